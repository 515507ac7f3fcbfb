package db

import "github.com/sarchlab/zeonplace/container"

// Connection is one (instance, pin) endpoint of a Net.
type Connection struct {
	Instance container.Key
	PinIndex int
}

// Net is a named signal, port or otherwise, with its set of connections.
type Net struct {
	Name        string
	IsPort      bool
	IsClock     bool
	Connections []Connection
}

func (n *Net) hasConnection(c Connection) bool {
	for _, existing := range n.Connections {
		if existing == c {
			return true
		}
	}
	return false
}
