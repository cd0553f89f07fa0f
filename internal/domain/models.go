package domain

import (
	"fmt"
	"strings"
)

// Portfolio is the full read-only content set shown by the UI
type Portfolio struct {
	Profile      Profile       `toml:"profile"`
	Experience   []Experience  `toml:"experience"`
	Projects     []Project     `toml:"projects"`
	Skills       []Skill       `toml:"skills"`
	Achievements []Achievement `toml:"achievements"`
}

// Profile represents the personal record shown in the hero and contact sections
type Profile struct {
	Name        string       `toml:"name"`
	Title       string       `toml:"title"`
	Tagline     string       `toml:"tagline"`
	Roles       []string     `toml:"roles"` // typewriter headline sequence
	Description string       `toml:"description"`
	About       []string     `toml:"about"`
	Location    string       `toml:"location"`
	Email       string       `toml:"email"`
	Phone       string       `toml:"phone,omitempty"`
	Resume      string       `toml:"resume"`
	SocialLinks []SocialLink `toml:"social"`
}

// SocialLink is an external profile link
type SocialLink struct {
	Platform string `toml:"platform"`
	URL      string `toml:"url"`
}

// Experience represents one work history entry
type Experience struct {
	ID           string   `toml:"id"`
	Title        string   `toml:"title"`
	Company      string   `toml:"company"`
	Location     string   `toml:"location"`
	Duration     string   `toml:"duration"`
	Description  []string `toml:"description"`
	Technologies []string `toml:"technologies"`
	Website      string   `toml:"website,omitempty"`
}

// Project represents a portfolio project
type Project struct {
	ID              string        `toml:"id"`
	Title           string        `toml:"title"`
	Description     string        `toml:"description"`
	LongDescription string        `toml:"long_description"`
	Technologies    []string      `toml:"technologies"`
	Category        Category      `toml:"category"`
	Images          []string      `toml:"images"`
	GitHub          string        `toml:"github,omitempty"`
	Demo            string        `toml:"demo,omitempty"`
	Featured        bool          `toml:"featured"`
	Status          ProjectStatus `toml:"status"`
}

// Skill represents a skill with a proficiency percentage
type Skill struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Level   int    `toml:"level"` // 0-100
	Section string `toml:"section"`
}

// Band returns the proficiency band of the skill
func (s Skill) Band() SkillBand {
	return BandFor(s.Level)
}

// Achievement represents a certification, award or similar record
type Achievement struct {
	ID          string          `toml:"id"`
	Title       string          `toml:"title"`
	Description string          `toml:"description"`
	Date        string          `toml:"date"`
	Kind        AchievementKind `toml:"category"`
	Link        string          `toml:"link,omitempty"`
}

// Category is the project filter category
type Category int

const (
	CategoryAll Category = iota
	CategoryWeb
	CategoryAI
	CategoryFullstack
	CategoryOther
	categoryCount
)

var categoryNames = [...]string{"all", "web", "ai", "fullstack", "other"}

// Adding a category without a name fails to compile.
var (
	_ [len(categoryNames) - int(categoryCount)]struct{}
	_ [int(categoryCount) - len(categoryNames)]struct{}
)

// Categories returns every category in display order
func Categories() []Category {
	cs := make([]Category, 0, categoryCount)
	for c := CategoryAll; c < categoryCount; c++ {
		cs = append(cs, c)
	}
	return cs
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// ParseCategory parses a category name
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return CategoryOther, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ProjectStatus is the delivery status of a project
type ProjectStatus int

const (
	StatusCompleted ProjectStatus = iota
	StatusInProgress
	StatusPlanned
	statusCount
)

var statusNames = [...]string{"completed", "in-progress", "planned"}

var (
	_ [len(statusNames) - int(statusCount)]struct{}
	_ [int(statusCount) - len(statusNames)]struct{}
)

func (s ProjectStatus) String() string {
	if s < 0 || s >= statusCount {
		return fmt.Sprintf("ProjectStatus(%d)", int(s))
	}
	return statusNames[s]
}

func (s ProjectStatus) MarshalText() ([]byte, error) {
	if s < 0 || s >= statusCount {
		return nil, fmt.Errorf("invalid project status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *ProjectStatus) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range statusNames {
		if name == v {
			*s = ProjectStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown project status %q", v)
}

// AchievementKind is the category of an achievement
type AchievementKind int

const (
	KindCertification AchievementKind = iota
	KindAward
	KindPublication
	KindCompetition
	KindOther
	kindCount
)

var kindNames = [...]string{"certification", "award", "publication", "competition", "other"}

var (
	_ [len(kindNames) - int(kindCount)]struct{}
	_ [int(kindCount) - len(kindNames)]struct{}
)

// AchievementKinds returns every achievement kind
func AchievementKinds() []AchievementKind {
	ks := make([]AchievementKind, 0, kindCount)
	for k := KindCertification; k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

func (k AchievementKind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("AchievementKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k AchievementKind) MarshalText() ([]byte, error) {
	if k < 0 || k >= kindCount {
		return nil, fmt.Errorf("invalid achievement kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *AchievementKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range kindNames {
		if name == v {
			*k = AchievementKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown achievement category %q", v)
}

// SkillBand groups proficiency levels for coloring
type SkillBand int

const (
	BandExpert SkillBand = iota // >= 90
	BandAdvanced                // >= 75
	BandProficient              // >= 60
	BandFamiliar                // >= 40
	BandLearning
	bandCount
)

var bandNames = [...]string{"expert", "advanced", "proficient", "familiar", "learning"}

var (
	_ [len(bandNames) - int(bandCount)]struct{}
	_ [int(bandCount) - len(bandNames)]struct{}
)

// BandFor maps a 0-100 level onto its band
func BandFor(level int) SkillBand {
	switch {
	case level >= 90:
		return BandExpert
	case level >= 75:
		return BandAdvanced
	case level >= 60:
		return BandProficient
	case level >= 40:
		return BandFamiliar
	default:
		return BandLearning
	}
}

// SkillBands returns every band, strongest first
func SkillBands() []SkillBand {
	bs := make([]SkillBand, 0, bandCount)
	for b := BandExpert; b < bandCount; b++ {
		bs = append(bs, b)
	}
	return bs
}

func (b SkillBand) String() string {
	if b < 0 || b >= bandCount {
		return fmt.Sprintf("SkillBand(%d)", int(b))
	}
	return bandNames[b]
}
