package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Base64Encoder はコントローラーの PayloadEncoder 契約を実装する
// 標準の転送用エンコーダーです。
type Base64Encoder struct{}

// NewBase64Encoder は Base64Encoder を生成します。
func NewBase64Encoder() *Base64Encoder {
	return &Base64Encoder{}
}

// Encode は画像バイナリを base64 テキストへ変換します。
// 空データはエンコード前の読み取り失敗とみなしてエラーを返します。
func (e *Base64Encoder) Encode(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("cannot encode empty image data")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
