package domain

import (
	"fmt"
	"strconv"
)

// Entity is a row shown on a listing screen.
type Entity interface {
	EntityID() string
	DisplayName() string
	Columns() []string
}

type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	CategoryID   int64   `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Available    bool    `json:"available"`
}

func (p Product) EntityID() string    { return strconv.FormatInt(p.ID, 10) }
func (p Product) DisplayName() string { return p.Name }
func (p Product) Columns() []string {
	return []string{p.EntityID(), p.Name, p.CategoryName, formatPrice(p.Price), yesNo(p.Available)}
}

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (c Category) EntityID() string    { return strconv.FormatInt(c.ID, 10) }
func (c Category) DisplayName() string { return c.Name }
func (c Category) Columns() []string   { return []string{c.EntityID(), c.Name} }

// OptionKind separates add-ons the customer may pick from choices the customer must make.
type OptionKind string

const (
	OptionAdditional OptionKind = "additional"
	OptionRequired   OptionKind = "required"
)

func (k OptionKind) Valid() bool {
	return k == OptionAdditional || k == OptionRequired
}

type Option struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Price float64    `json:"price"`
	Kind  OptionKind `json:"-"`
}

func (o Option) EntityID() string    { return strconv.FormatInt(o.ID, 10) }
func (o Option) DisplayName() string { return o.Name }
func (o Option) Columns() []string {
	return []string{o.EntityID(), o.Name, formatPrice(o.Price)}
}

type Promotion struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	DiscountPercent float64 `json:"discountPercent"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

func (p Promotion) EntityID() string    { return strconv.FormatInt(p.ID, 10) }
func (p Promotion) DisplayName() string { return p.Title }
func (p Promotion) Columns() []string {
	return []string{p.EntityID(), p.Title, strconv.FormatFloat(p.DiscountPercent, 'f', -1, 64) + "%"}
}

type Reel struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	VideoURL  string `json:"videoUrl"`
	ProductID int64  `json:"productId,omitempty"`
}

func (r Reel) EntityID() string    { return strconv.FormatInt(r.ID, 10) }
func (r Reel) DisplayName() string { return r.Title }
func (r Reel) Columns() []string   { return []string{r.EntityID(), r.Title, r.VideoURL} }

// Game is a reward game offered to customers in the ordering app.
type Game struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Reward string `json:"reward"`
	Points int    `json:"points"`
}

func (g Game) EntityID() string    { return strconv.FormatInt(g.ID, 10) }
func (g Game) DisplayName() string { return g.Name }
func (g Game) Columns() []string {
	return []string{g.EntityID(), g.Name, g.Reward, strconv.Itoa(g.Points)}
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
