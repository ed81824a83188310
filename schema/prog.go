package schema

// DATA_PROG attribute ids (command 0x000C).
const (
	ProgZugdatei         uint16 = 1
	ProgZugnummer        uint16 = 2
	ProgSimStart         uint16 = 3
	ProgBuchfahrplanDatei uint16 = 4
)
