package domain

import "testing"

func TestAllowed(t *testing.T) {
	cases := []struct {
		name     string
		have     []Role
		required []Role
		want     bool
	}{
		{"employee against admin/hr", []Role{RoleEmployee}, []Role{RoleAdmin, RoleHR}, false},
		{"admin against admin/hr", []Role{RoleAdmin}, []Role{RoleAdmin, RoleHR}, true},
		{"hr among several", []Role{RoleManager, RoleHR}, []Role{RoleAdmin, RoleHR}, true},
		{"no roles", nil, []Role{RoleAdmin}, false},
		{"empty required denies", []Role{RoleAdmin}, nil, false},
	}

	for _, tc := range cases {
		if got := Allowed(tc.have, tc.required); got != tc.want {
			t.Fatalf("%s: Allowed(%v, %v) = %v, want %v", tc.name, tc.have, tc.required, got, tc.want)
		}
	}
}

func TestWritePolicyCoversAllResources(t *testing.T) {
	for _, resource := range []string{"departments", "employees", "roles"} {
		roles, ok := WritePolicy[resource]
		if !ok || len(roles) == 0 {
			t.Fatalf("no write policy for %q", resource)
		}
	}
	if !Allowed([]Role{RoleAdmin}, WritePolicy["roles"]) {
		t.Fatalf("ADMIN must be allowed to mutate job roles")
	}
	if Allowed([]Role{RoleHR}, WritePolicy["roles"]) {
		t.Fatalf("HR must not be allowed to mutate job roles")
	}
}

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"admin", "HR", "hr", "bogus", " manager "})
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %v", roles)
	}
	if roles[0] != RoleAdmin || roles[1] != RoleHR || roles[2] != RoleManager {
		t.Fatalf("unexpected roles: %v", roles)
	}
}
