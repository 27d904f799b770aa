package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Portfolio display modes, inferred from which media fields are set.
const (
	DisplayImage       = "image"
	DisplayBeforeAfter = "before_after"
	DisplayVideo       = "video"
)

type PortfolioItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"default:'General'" json:"category"`

	ImageURL       string `json:"imageUrl"`
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	VideoURL       string `json:"videoUrl"`

	Tags     StringList `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Featured bool       `gorm:"default:false" json:"featured"`

	// Not stored; derived from the media fields on read.
	DisplayMode string `gorm:"-" json:"displayMode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (p *PortfolioItem) AfterFind(tx *gorm.DB) (err error) {
	p.DisplayMode = p.ResolveDisplayMode()
	return
}

// ResolveDisplayMode picks the display mode by field presence: a video wins
// over a before/after pair, which wins over a plain image.
func (p *PortfolioItem) ResolveDisplayMode() string {
	switch {
	case p.VideoURL != "":
		return DisplayVideo
	case p.BeforeImageURL != "" && p.AfterImageURL != "":
		return DisplayBeforeAfter
	default:
		return DisplayImage
	}
}
