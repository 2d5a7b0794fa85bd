package preflight

// Checker provides prerequisite checking functionality.
type Checker struct {
	executor    CommandExecutor
	interpreter string // configured interpreter override, "" = auto
	entryPath   string // entry file path, "" = default main.py
}

// NewChecker creates a new Checker with the real command executor.
func NewChecker() *Checker {
	return &Checker{executor: &RealExecutor{}}
}

// NewCheckerWithExecutor creates a new Checker with a custom executor (for testing).
func NewCheckerWithExecutor(exec CommandExecutor) *Checker {
	return &Checker{executor: exec}
}

// SetInterpreter sets the configured Python interpreter override.
func (c *Checker) SetInterpreter(interpreter string) {
	c.interpreter = interpreter
}

// SetEntryPath sets the entry file path to check.
func (c *Checker) SetEntryPath(path string) {
	c.entryPath = path
}

// CheckAll runs all checks and returns groups with results.
func (c *Checker) CheckAll() []CheckGroup {
	var result []CheckGroup
	for _, group := range GetGroups() {
		result = append(result, c.CheckGroup(group.ID))
	}
	return result
}

// CheckGroup runs all checks for a specific group.
func (c *Checker) CheckGroup(groupID string) CheckGroup {
	def, ok := GetGroupDefinition(groupID)
	if !ok {
		return CheckGroup{ID: groupID, Name: "Unknown"}
	}

	group := CheckGroup{
		ID:          groupID,
		Name:        def.Name,
		Description: def.Description,
	}

	for _, checkID := range def.CheckIDs {
		group.Checks = append(group.Checks, c.runCheck(checkID))
	}

	return group
}

// runCheck runs a specific check by ID.
func (c *Checker) runCheck(checkID string) Check {
	switch checkID {
	case IDPython:
		return CheckPython(c.executor, c.interpreter)
	case IDPip:
		return CheckPip(c.executor, c.interpreter)
	case IDTkinter:
		return CheckTkinter(c.executor, c.interpreter)
	case IDGDAL:
		return CheckGDAL(c.executor)
	case IDEntryFile:
		return CheckEntryFile(c.executor, c.entryPath)
	case IDResources:
		return CheckResources(c.executor)
	default:
		return Check{
			ID:      checkID,
			Name:    checkID,
			Status:  StatusError,
			Message: "unknown check",
		}
	}
}

// GetCheck runs a single check by ID.
func (c *Checker) GetCheck(checkID string) Check {
	return c.runCheck(checkID)
}

// Summary represents an overall prerequisite summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func (c *Checker) GetSummary(groups []CheckGroup) Summary {
	var summary Summary
	for _, group := range groups {
		for _, check := range group.Checks {
			summary.Total++
			switch check.Status {
			case StatusOK:
				summary.OK++
			case StatusMissing:
				summary.Missing++
			case StatusWarning:
				summary.Warnings++
			case StatusError:
				summary.Errors++
			}
		}
	}
	return summary
}

// HasIssues returns true if any checks have issues.
func (c *Checker) HasIssues(groups []CheckGroup) bool {
	summary := c.GetSummary(groups)
	return summary.Missing > 0 || summary.Errors > 0
}

// FatalChecks returns the checks that block the launch: missing or broken
// prerequisites the user must remediate before the launcher can proceed.
func FatalChecks(groups []CheckGroup) []Check {
	var fatal []Check
	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Fatal && (check.Status == StatusMissing || check.Status == StatusError) {
				fatal = append(fatal, check)
			}
		}
	}
	return fatal
}
