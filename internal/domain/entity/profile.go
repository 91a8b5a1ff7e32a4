package entity

// Profile is the public and contact information of a marketplace user.
type Profile struct {
	ID        int64  // Profile identifier.
	UserID    int64  // Account identifier the profile belongs to.
	FullName  string // Display name.
	Email     string
	Phone     string
	AvatarURL string
	Address   string
	PublicBio string
	IsOwner   bool

	// Owner payout details, empty for renters.
	PayoutEmail       string
	BankAccountNumber string
	YapePhoneNumber   string
}
