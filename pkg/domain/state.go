package domain

// Status は編集リクエストのライフサイクル上の位置を表します。
type Status int

const (
	// StatusIdle は初期状態（未送信）です。
	StatusIdle Status = iota
	// StatusLoading はリモート編集呼び出しが未解決であることを示します。
	StatusLoading
	// StatusSuccess は結果画像を保持する成功状態です。
	StatusSuccess
	// StatusError はエラーメッセージを保持する失敗状態です。
	StatusError
)

// String はログ出力用の状態名を返します。
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FallbackErrorMessage は、コラボレーターがメッセージを返さなかった場合に
// ユーザーへ表示する既定の文言です。Error 状態のメッセージは常に非空です。
const FallbackErrorMessage = "The image edit failed for an unknown reason."

// RequestState は {Idle, Loading, Success, Error} のタグ付きユニオンです。
// フィールドを非公開にしコンストラクタ経由でのみ生成させることで、
// 「常にちょうど1つのバリアントだけが有効」という不変条件を型で保証します。
// Success が結果画像を持たない、Error がメッセージを持たない、
// あるいは両方のペイロードを同時に持つ状態は構築できません。
type RequestState struct {
	status      Status
	resultImage string
	message     string
}

// Idle は初期状態を返します。RequestState のゼロ値も Idle です。
func Idle() RequestState {
	return RequestState{status: StatusIdle}
}

// Loading は送信中状態を返します。ペイロードは持ちません。
func Loading() RequestState {
	return RequestState{status: StatusLoading}
}

// Success は結果画像の表示用参照（data URI）を保持する成功状態を返します。
func Success(resultImage string) RequestState {
	return RequestState{status: StatusSuccess, resultImage: resultImage}
}

// Failure はエラーメッセージを保持する失敗状態を返します。
// 空のメッセージは FallbackErrorMessage に置き換えられます。
func Failure(message string) RequestState {
	if message == "" {
		message = FallbackErrorMessage
	}
	return RequestState{status: StatusError, message: message}
}

// Status は現在有効なバリアントのタグを返します。
func (s RequestState) Status() Status {
	return s.status
}

// ResultImage は Success 状態のときのみ結果画像参照を返します。
func (s RequestState) ResultImage() (string, bool) {
	if s.status != StatusSuccess {
		return "", false
	}
	return s.resultImage, true
}

// ErrorMessage は Error 状態のときのみメッセージを返します。
func (s RequestState) ErrorMessage() (string, bool) {
	if s.status != StatusError {
		return "", false
	}
	return s.message, true
}
