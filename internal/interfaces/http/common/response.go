package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON writes payload as a JSON response with the given status.
// ステータス書き込み後のエンコード失敗はレスポンスへ介入できないため、ログに残すのみとする。
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("レスポンスの JSON エンコードに失敗: %v", err)
	}
}
