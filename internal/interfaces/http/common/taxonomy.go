package common

import "strings"

// AllowedServiceTypes は検索・登録の両方で受け付けるサービス種別の正規ラベル。
var AllowedServiceTypes = []string{"トリミング", "動物病院", "ペットホテル", "しつけ教室", "散歩代行", "ペットカフェ", "ペットショップ"}

var allowedServiceTypeSet = makeStringSet(AllowedServiceTypes)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// CanonicalServiceType normalises various aliases into canonical Japanese labels.
func CanonicalServiceType(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	switch lower {
	case "grooming", "trimming":
		return "トリミング"
	case "vet", "veterinary", "clinic":
		return "動物病院"
	case "hotel", "boarding":
		return "ペットホテル"
	case "training", "school":
		return "しつけ教室"
	case "walking", "walk":
		return "散歩代行"
	case "cafe":
		return "ペットカフェ"
	case "shop", "petshop", "store":
		return "ペットショップ"
	}

	switch trimmed {
	case "トリミング", "動物病院", "ペットホテル", "しつけ教室", "散歩代行", "ペットカフェ", "ペットショップ":
		return trimmed
	}

	return trimmed
}

// KnownServiceType reports whether the canonical label belongs to the fixed set.
func KnownServiceType(label string) bool {
	_, ok := allowedServiceTypeSet[label]
	return ok
}
