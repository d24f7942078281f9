// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lunban/lunban/pkg/errors"
)

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError 返回错误响应
func respondError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Wrap(err, errors.CodeInternal, "内部错误")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"code":    appErr.Code,
		"message": appErr.Message,
		"details": appErr.Details,
		"fields":  appErr.Fields,
	})
}

// queryInt 解析整型查询参数
func queryInt(r *http.Request, name string) (int, *errors.AppError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.InvalidInput(name, "参数不能为空")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(name, "应为整数")
	}
	return v, nil
}

// queryString 读取字符串查询参数（必填）
func queryString(r *http.Request, name string) (string, *errors.AppError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return "", errors.InvalidInput(name, "参数不能为空")
	}
	return raw, nil
}
