package repositories

import "github.com/desertthunder/nowplaying/internal/models"

// TokenStore reads and writes the process-wide token record.
type TokenStore interface {
	Read() models.TokenRecord        // Read returns a snapshot of the current record
	Write(record models.TokenRecord) // Write replaces the record wholesale
}
