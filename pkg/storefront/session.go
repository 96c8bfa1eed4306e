package storefront

// Session menyuplai identitas untuk semua operasi cart & checkout.
// Disuntikkan saat konstruksi agar core tidak membaca storage global.
type Session interface {
	UserKey() string
	AuthToken() string
}

// GuestSession dipakai saat belum ada identitas terautentikasi.
type GuestSession struct{}

func (GuestSession) UserKey() string   { return "guest" }
func (GuestSession) AuthToken() string { return "" }

// TokenSession adalah sesi terautentikasi dengan user key dan bearer
// token yang sudah diterbitkan pihak lain.
type TokenSession struct {
	Key   string
	Token string
}

func (s TokenSession) UserKey() string   { return s.Key }
func (s TokenSession) AuthToken() string { return s.Token }
