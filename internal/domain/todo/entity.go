package todo

// Item represents a single todo entry owned by a user.
type Item struct {
	ID       string // ID is the server-generated UUID of the item
	ItemName string // ItemName is the text of the todo
	Added    string // Added is the username of the owner
}
