package domain

// SourceImage はユーザーが選択した編集対象の画像です。
// 再選択のたびに丸ごと置き換えられ、部分更新はありません。
type SourceImage struct {
	Data     []byte
	MimeType string
}

// EditResponse はリモート編集サービスが返した画像データです。
type EditResponse struct {
	Data     []byte
	MimeType string
}
