package usecases

const (
	// txRefPrefix tags every listing fee charge raised by this service
	txRefPrefix = "lizexpress"

	// itemImagesFolder and friends group stored objects by purpose
	itemImagesFolder    = "items"
	receiptsFolder      = "receipts"
	verificationsFolder = "verifications"
	avatarsFolder       = "avatars"

	// defaultPageLimit bounds list endpoints that omit a limit
	defaultPageLimit = 20
)
