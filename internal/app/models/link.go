package models

import "time"

// Link is an undirected connection between two distinct students, unique
// per unordered pair.
type Link struct {
	ID        int64     `json:"id" db:"id"`
	Connector string    `json:"connector" db:"connector"`
	Acceptor  string    `json:"acceptor" db:"acceptor"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	ConnectorName    *string `json:"connector_name,omitempty"`
	ConnectorSurname *string `json:"connector_surname,omitempty"`
	AcceptorName     *string `json:"acceptor_name,omitempty"`
	AcceptorSurname  *string `json:"acceptor_surname,omitempty"`
}
