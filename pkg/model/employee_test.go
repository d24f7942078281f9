package model

import "testing"

func TestEmployee_IsSchedulable(t *testing.T) {
	tests := []struct {
		name     string
		emp      Employee
		expected bool
	}{
		{"运维部在职员工", Employee{Active: true, Role: RoleEmployee, Department: DepartmentOperations}, true},
		{"离职员工", Employee{Active: false, Role: RoleEmployee, Department: DepartmentOperations}, false},
		{"管理员不参与排班", Employee{Active: true, Role: RoleAdmin, Department: DepartmentOperations}, false},
		{"其他部门员工", Employee{Active: true, Role: RoleEmployee, Department: "HR"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.emp.IsSchedulable(); got != tt.expected {
				t.Errorf("IsSchedulable() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEmployee_IsRosterVisible(t *testing.T) {
	tests := []struct {
		name     string
		emp      Employee
		expected bool
	}{
		{"在职员工", Employee{Active: true, Role: RoleEmployee}, true},
		{"在职管理员", Employee{Active: true, Role: RoleAdmin}, true},
		{"在职经理", Employee{Active: true, Role: RoleManager}, true},
		{"离职经理", Employee{Active: false, Role: RoleManager}, false},
		{"未知角色", Employee{Active: true, Role: "contractor"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.emp.IsRosterVisible(); got != tt.expected {
				t.Errorf("IsRosterVisible() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSchedulableNames(t *testing.T) {
	employees := []*Employee{
		{Name: "Rossi", Active: true, Role: RoleEmployee, Department: DepartmentOperations},
		{Name: "Verdi", Active: true, Role: RoleAdmin, Department: DepartmentOperations},
		{Name: "Bianchi", Active: true, Role: RoleEmployee, Department: DepartmentOperations},
		{Name: "Neri", Active: false, Role: RoleEmployee, Department: DepartmentOperations},
	}

	names := SchedulableNames(employees)
	if len(names) != 2 || names[0] != "Rossi" || names[1] != "Bianchi" {
		t.Errorf("SchedulableNames = %v, expected [Rossi Bianchi]", names)
	}
}
