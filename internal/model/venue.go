package model

// Venue is a place where events happen.  Venue names are unique across
// the whole store.
//
// Fields:
//  ID      – primary key identifier.
//  Name    – unique display name.
//  Address – free-form postal address.
type Venue struct {
    ID      int64  `json:"id"`      // venues.id
    Name    string `json:"name"`    // venues.name
    Address string `json:"address"` // venues.address
}
