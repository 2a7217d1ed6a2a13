package reconcile

import "github.com/miloscript/monify/internal/model"

// MergeBank appends to existing every incoming transaction whose fingerprint
// is not already present, and returns the merged list plus the number
// appended. Matched incoming transactions are discarded unchanged: the
// stored copy wins, including its label. Re-importing an overlapping export
// is therefore idempotent.
//
// A real transaction that legitimately occurs twice with identical fields is
// indistinguishable from a re-import under this scheme and collapses to one
// entry. Known limitation, kept on purpose.
func MergeBank(existing, incoming []model.BankTransaction) ([]model.BankTransaction, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		seen[Fingerprint(t)] = struct{}{}
	}

	merged := existing
	appended := 0
	for _, t := range incoming {
		fp := Fingerprint(t)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		merged = append(merged, t)
		appended++
	}
	return merged, appended
}

// MergePersonal is MergeBank over personal transactions.
func MergePersonal(existing, incoming []model.PersonalTransaction) ([]model.PersonalTransaction, int) {
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		seen[PersonalFingerprint(t)] = struct{}{}
	}

	merged := existing
	appended := 0
	for _, t := range incoming {
		fp := PersonalFingerprint(t)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		merged = append(merged, t)
		appended++
	}
	return merged, appended
}
