package taskdata

import "github.com/toba/ghtask/internal/github"

// Operation is a state transition chosen when a task is saved.
type Operation string

const (
	OperationLeave  Operation = "leave"
	OperationReopen Operation = "reopen"
	OperationClose  Operation = "close"
)

// ParseOperation returns the operation with id.
func ParseOperation(id string) (Operation, bool) {
	switch op := Operation(id); op {
	case OperationLeave, OperationReopen, OperationClose:
		return op, true
	}
	return "", false
}

// Label returns the display label of o for an issue in state.
func (o Operation) Label(state string) string {
	switch o {
	case OperationLeave:
		return "Leave as " + state
	case OperationReopen:
		return "Reopen"
	case OperationClose:
		return "Close"
	}
	return string(o)
}

// OperationsFor returns the operations offered for an issue in state. Leave
// is always first and is the default.
func OperationsFor(state string) []Operation {
	switch state {
	case github.StateOpen:
		return []Operation{OperationLeave, OperationClose}
	case github.StateClosed:
		return []Operation{OperationLeave, OperationReopen}
	case "":
		return nil
	}
	return []Operation{OperationLeave}
}

// createOperations adds the operation selector and one attribute per
// offered operation. New tasks get an empty selector.
func createOperations(data *TaskData, state string) {
	selector := data.Root().CreateAttribute(AttrOperation)
	selector.Type = TypeOperation
	if data.IsNew() {
		return
	}
	for i, op := range OperationsFor(state) {
		a := data.Root().CreateAttribute(PrefixOperation + string(op))
		a.Type = TypeOperation
		a.Label = op.Label(state)
		a.SetValue(string(op))
		if i == 0 {
			selector.Label = a.Label
			selector.SetValue(string(op))
		}
	}
}

// SelectedOperation returns the operation chosen in data, if any.
func SelectedOperation(data *TaskData) (Operation, bool) {
	return ParseOperation(data.Value(AttrOperation))
}

// SelectOperation sets the operation chosen in data.
func SelectOperation(data *TaskData, op Operation) {
	selector := data.Root().Attribute(AttrOperation)
	if selector == nil {
		selector = data.Root().CreateAttribute(AttrOperation)
		selector.Type = TypeOperation
	}
	selector.SetValue(string(op))
	if a := data.Root().Attribute(PrefixOperation + string(op)); a != nil {
		selector.Label = a.Label
	}
}
