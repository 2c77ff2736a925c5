package controller

import "context"

// PayloadEncoder は画像バイナリを転送用テキスト表現へ変換するコラボレーターです。
// 失敗は I/O 系のエラーとして返され、送信の失敗メッセージに伝播します。
type PayloadEncoder interface {
	Encode(ctx context.Context, data []byte) (string, error)
}

// EditServiceClient は外部の画像編集サービスを呼び出すコラボレーターです。
// encodedImage は PayloadEncoder の出力、戻り値は編集結果のエンコード済み
// ペイロードです。失敗の内訳（ネットワーク・クォータ・ポリシー等）は
// 区別せず、メッセージだけをそのままユーザーへ届けます。
type EditServiceClient interface {
	EditImage(ctx context.Context, encodedImage, mimeType, prompt string) (string, error)
}
