package constant

// BucketType is a closed set of stock accounting categories. Every ledger
// movement belongs to exactly one bucket; buckets never overlap.
type BucketType string

const (
	BucketIncoming       BucketType = "incoming"
	BucketAvailable      BucketType = "available"
	BucketCommitted      BucketType = "committed"
	BucketReserved       BucketType = "reserved"
	BucketDamaged        BucketType = "damaged"
	BucketSafety         BucketType = "safety"
	BucketQualityControl BucketType = "qualityControl"
)

// BucketTypes lists every bucket in a fixed order. Code that locks
// per-bucket rows iterates in this order to keep lock acquisition stable.
var BucketTypes = []BucketType{
	BucketIncoming,
	BucketAvailable,
	BucketCommitted,
	BucketReserved,
	BucketDamaged,
	BucketSafety,
	BucketQualityControl,
}

var validBuckets = map[BucketType]struct{}{
	BucketIncoming:       {},
	BucketAvailable:      {},
	BucketCommitted:      {},
	BucketReserved:       {},
	BucketDamaged:        {},
	BucketSafety:         {},
	BucketQualityControl: {},
}

func (b BucketType) Valid() bool {
	_, ok := validBuckets[b]
	return ok
}
