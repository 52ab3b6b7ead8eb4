// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey はコンテキストにリクエストIDを格納するためのキー型。
type requestIDKey struct{}

// RequestIDHeader はレスポンスに付与するリクエストIDヘッダー名。
const RequestIDHeader = "X-Request-Id"

// NewRequestIDMiddleware はリクエストごとに一意のIDを採番するミドルウェアを返す。
// クライアントがX-Request-Idヘッダーを送信した場合はその値を引き継ぐ。
// IDはコンテキストとレスポンスヘッダーの両方に設定され、ロギングミドルウェアが参照する。
func NewRequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext はコンテキストからリクエストIDを取得する。
// 未設定の場合は空文字列を返す。
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
