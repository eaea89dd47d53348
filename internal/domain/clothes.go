package domain

import "time"

// Color enumerates catalog colors.
type Color string

const (
	ColorPink   Color = "pink"
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
)

// Size enumerates catalog sizes.
type Size string

const (
	SizeXS  Size = "xs"
	SizeS   Size = "s"
	SizeM   Size = "m"
	SizeL   Size = "l"
	SizeXL  Size = "xl"
	SizeXXL Size = "xxl"
)

// Clothes is a single catalog item.
type Clothes struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Color          Color     `json:"color"`
	Size           Size      `json:"size"`
	PhotoURL       *string   `json:"photo_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at"`
}
