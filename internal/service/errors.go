package service

import "fmt"

var (
	ErrCannotRegisterLog     = fmt.Errorf("cannot register log")
	ErrInvalidLevel          = fmt.Errorf("invalid log level")
	ErrCannotGetAlertHistory = fmt.Errorf("cannot get alert history")
)
