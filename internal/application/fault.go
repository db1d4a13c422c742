package application

import "fmt"

// FaultError wraps a value recovered from a panic during a run. Its message
// is the fault's own message.
type FaultError struct {
	Cause any
}

func (e *FaultError) Error() string {
	if err, ok := e.Cause.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Cause)
}

func (e *FaultError) Is(target error) bool {
	return target == ErrInternalFault
}

func (e *FaultError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}
