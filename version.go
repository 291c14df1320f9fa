package domextras

// Version information for the domextras library.
const (
	Version = "0.1.0"
	Name    = "domextras"
)
