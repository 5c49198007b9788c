package commands

import (
	"strings"
	"testing"

	"github.com/thoreinstein/defcheck/internal/rules"
)

func ruleStatus(t *testing.T, output string) map[string]string {
	t.Helper()
	status := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(output), "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			t.Fatalf("malformed line %q", line)
		}
		status[fields[0]] = fields[1]
	}
	return status
}

func TestRulesCommand(t *testing.T) {
	output, err := executeCommand(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}
	if !strings.HasPrefix(output, "RULE") {
		t.Errorf("missing header: %q", output)
	}

	status := ruleStatus(t, output)
	for _, name := range rules.Names() {
		if status[name] != "active" {
			t.Errorf("rule %s status = %q, want active", name, status[name])
		}
	}
}

func TestRulesCommand_Disabled(t *testing.T) {
	t.Setenv("DEFCHECK_DISABLED_RULES", "documented")

	output, err := executeCommand(t, "rules")
	if err != nil {
		t.Fatalf("rules failed: %v", err)
	}

	status := ruleStatus(t, output)
	if status[rules.NameDocumented] != "disabled" {
		t.Errorf("documented status = %q, want disabled", status[rules.NameDocumented])
	}
	if status[rules.NameTyped] != "active" {
		t.Errorf("typed status = %q, want active", status[rules.NameTyped])
	}
}
