package cmd

import (
	"testing"
)

func TestValidate(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"new section", []string{"Tutorials", "--section"}, ""},
		{"existing section", []string{"guides", "--section"}, "That section already exists!"},
		{"existing section title case", []string{"GUIDES", "-s"}, "That section already exists!"},
		{"new subsection", []string{"Basics", "--path", "Guides", "--section"}, ""},
		{"existing subsection", []string{"advanced", "--path", "guides", "--section"}, "That sub-section already exists!"},
		{"new page", []string{"Deploy", "--path", "Guides"}, ""},
		{"existing page", []string{"install", "--path", "Guides"}, "A page in that section already exists!"},
		{"group name as page", []string{"Advanced", "--path", "Guides"}, "A page in that section already exists!"},
		{"existing page in subsection", []string{"tuning", "--path", "Guides/Advanced"}, "A page in that section already exists!"},
		{"new page in subsection", []string{"Profiling", "--path", "Guides/Advanced"}, ""},
		{"same name other section", []string{"Install", "--path", "Reference"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.runErr(append([]string{"validate"}, tt.args...)...)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate %v: %v\n%s", tt.args, err, out)
				}
				env.contains(out, "is available")
				return
			}
			if err == nil {
				t.Fatalf("validate %v should fail", tt.args)
			}
			env.contains(out, tt.wantErr)
		})
	}
}

func TestValidate_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("validate", "Deploy", "--path", "Guides", "-o", "json")
	env.contains(out, `"valid":true`)
	env.contains(out, `"kind":"page"`)

	out, _ = env.runErr("validate", "Guides", "--section", "-o", "json")
	env.equals(out, `{"error":"That section already exists!"}`)
}
