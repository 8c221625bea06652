package model

const (
	RelationshipDoctor    = "doctor"
	RelationshipCompanion = "companion"
	RelationshipEnemy     = "enemy"

	StateAlive = "alive"
)

type Character struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	State        string `json:"state"`
	Relationship string `json:"relationship"`
	RaceID       int64  `json:"race_id"`
}

type Race struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Doctor and Enemy are satellite records holding the relationship-specific
// attributes exposed by the character detail endpoint.
type Doctor struct {
	ID          int64  `json:"id"`
	CharacterID int64  `json:"character_id"`
	Appearance  string `json:"appearance"`
	Personality string `json:"personality"`
}

type Enemy struct {
	ID          int64  `json:"id"`
	CharacterID int64  `json:"character_id"`
	Reason      string `json:"reason"`
}
