package orderbook

const (
	// defaultReservedOrderSlots sizes the initial backing array of the
	// order index hashmap.
	defaultReservedOrderSlots = 1024

	// defaultReservedLevelSlots sizes the initial backing array of the
	// level data index hashmap.
	defaultReservedLevelSlots = 256
)
