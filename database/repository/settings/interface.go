package settingsRepo

import "meetdesk/models"

// SettingsRepository is the storage contract for the booking settings
// singleton. Get seeds defaults when no document exists yet; the document is
// updated in place and never deleted.
type SettingsRepository interface {
	Get() (*models.BookingSettings, error)
	Update(update models.SettingsUpdate) error
}
