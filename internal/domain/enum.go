package domain

import (
	"fmt"
	"strings"
)

type Race string

const (
	RaceHuman  Race = "HUMAN"
	RaceDwarf  Race = "DWARF"
	RaceElf    Race = "ELF"
	RaceGiant  Race = "GIANT"
	RaceOrc    Race = "ORC"
	RaceTroll  Race = "TROLL"
	RaceHobbit Race = "HOBBIT"
)

var races = []Race{RaceHuman, RaceDwarf, RaceElf, RaceGiant, RaceOrc, RaceTroll, RaceHobbit}

type Profession string

const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
)

var professions = []Profession{
	ProfessionWarrior, ProfessionRogue, ProfessionSorcerer, ProfessionCleric,
	ProfessionPaladin, ProfessionNazgul, ProfessionWarlock, ProfessionDruid,
}

// PlayerOrder 列表排序字段
type PlayerOrder string

const (
	OrderID         PlayerOrder = "ID"
	OrderName       PlayerOrder = "NAME"
	OrderExperience PlayerOrder = "EXPERIENCE"
	OrderBirthday   PlayerOrder = "BIRTHDAY"
)

var orders = []PlayerOrder{OrderID, OrderName, OrderExperience, OrderBirthday}

func ParseRace(s string) (Race, error) {
	for _, r := range races {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown race %q", s)
}

func ParseProfession(s string) (Profession, error) {
	for _, p := range professions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown profession %q", s)
}

// ParsePlayerOrder 空串视为默认 ID
func ParsePlayerOrder(s string) (PlayerOrder, error) {
	if s == "" {
		return OrderID, nil
	}
	for _, o := range orders {
		if string(o) == strings.ToUpper(s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown order %q", s)
}

func Races() []Race             { return append([]Race(nil), races...) }
func Professions() []Profession { return append([]Profession(nil), professions...) }

func (r *Race) UnmarshalText(b []byte) error {
	v, err := ParseRace(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (p *Profession) UnmarshalText(b []byte) error {
	v, err := ParseProfession(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
