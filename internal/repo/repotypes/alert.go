package repotypes

type AlertEventFilter struct {
	Service string
	Level   string
	State   string
	Limit   int
}
