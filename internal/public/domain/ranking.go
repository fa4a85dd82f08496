package domain

import "sort"

// SearchResult is a business projection enriched with the distance from the
// search center. DistanceKm is nil when the query had no center.
type SearchResult struct {
	Business   Business
	DistanceKm *float64
}

// RankByDistance は候補集合を検索中心からの距離順に並べ替えた新しいスライスを返す。
// center が nil の場合はストアの返却順をそのまま保持し、距離は付与しない。
// 同距離の候補は到着順を維持する (安定ソート) ため、同一クエリの結果は決定的になる。
func RankByDistance(candidates []Business, center *Point) []SearchResult {
	results := make([]SearchResult, 0, len(candidates))
	if center == nil {
		for _, business := range candidates {
			results = append(results, SearchResult{Business: business})
		}
		return results
	}

	for _, business := range candidates {
		d := DistanceKm(*center, business.Location.Coordinates)
		results = append(results, SearchResult{Business: business, DistanceKm: &d})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].DistanceKm < *results[j].DistanceKm
	})
	return results
}

// Page slices the ranked results. hasMore は独立したカウントクエリ由来の total と
// offset+limit の比較で決まり、取得済みスライス長には依存しない。
func Page(ranked []SearchResult, total int64, offset, limit int) ([]SearchResult, bool) {
	hasMore := total > int64(offset+limit)

	start := offset
	if start > len(ranked) {
		start = len(ranked)
	}
	end := start + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[start:end], hasMore
}
