package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lixenwraith/stardrift/content"
)

// RunRecord is one settled run
type RunRecord struct {
	ID      uuid.UUID
	Zone    content.ZoneID
	Time    float64
	Kills   int
	Level   int
	Earned  int
	Died    bool
	Loadout []LoadoutEntry
	EndedAt time.Time
}

// LoadoutEntry is a weapon as it stood when the run ended
type LoadoutEntry struct {
	Weapon   content.WeaponID `json:"weapon"`
	Level    int              `json:"level"`
	Overlock string           `json:"overlock,omitempty"`
}

// saveRow holds the single persisted SaveState document
type saveRow struct {
	ID        uint `gorm:"primarykey"`
	Data      datatypes.JSON
	UpdatedAt time.Time
}

func (saveRow) TableName() string { return "saves" }

// runRow is the gorm model of RunRecord
type runRow struct {
	ID      string `gorm:"primaryKey;size:36"`
	Zone    string `gorm:"index;size:64"`
	Time    float64
	Kills   int
	Level   int
	Earned  int
	Died    bool
	Loadout datatypes.JSON
	EndedAt time.Time `gorm:"index"`
}

func (runRow) TableName() string { return "runs" }
