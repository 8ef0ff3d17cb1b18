package constant

type TransferStatus int

const (
	TransferStatusDraft    TransferStatus = 1
	TransferStatusPending  TransferStatus = 2
	TransferStatusPartial  TransferStatus = 3
	TransferStatusReceived TransferStatus = 4
)

type CommitmentStatus int

const (
	CommitmentStatusOpen      CommitmentStatus = 1
	CommitmentStatusFulfilled CommitmentStatus = 2
	CommitmentStatusReleased  CommitmentStatus = 3
)
