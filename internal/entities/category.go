package entities

type Category struct {
	ID    string
	Name  string
	Color string
	Icon  string
	Image string
}
