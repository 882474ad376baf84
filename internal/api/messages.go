package api

// User-facing messages. The frontend shows them as-is.
const (
	msgUnauthorized      = "Yetkilendirme gerekli"
	msgInvalidRequest    = "Geçersiz istek"
	msgFavoritesFailed   = "Favori tarifler getirilirken bir hata oluştu"
	msgRecipesFailed     = "Tarifler getirilirken bir hata oluştu"
	msgCategoriesFailed  = "Kategoriler getirilirken bir hata oluştu"
	msgSearchFailed      = "Arama sırasında bir hata oluştu"
	msgInvalidCategory   = "Geçersiz kategori"
	msgLoginMissing      = "Kullanıcı adı ve şifre gereklidir"
	msgLoginInvalid      = "Kullanıcı adı veya şifre hatalı"
	msgLoginFailed       = "Giriş sırasında bir hata oluştu"
	msgLoginSuccess      = "Giriş başarılı"
	msgRegisterMissing   = "Kullanıcı adı, email ve şifre gereklidir"
	msgInvalidEmail      = "Geçersiz email formatı"
	msgPasswordTooShort  = "Şifre en az 6 karakter olmalıdır"
	msgPasswordTooLong   = "Şifre çok uzun"
	msgFieldTooLong      = "Kullanıcı adı en fazla 50, email en fazla 100 karakter olabilir"
	msgUsernameTaken     = "Bu kullanıcı adı zaten kullanılıyor"
	msgEmailTaken        = "Bu email adresi zaten kullanılıyor"
	msgRegisterFailed    = "Kayıt sırasında bir hata oluştu"
	msgRegisterSuccess   = "Kayıt başarılı"
	msgLogoutFailed      = "Çıkış sırasında bir hata oluştu"
	msgLogoutSuccess     = "Çıkış başarılı"
	msgHealthy           = "Lezzetli Tarifler API çalışıyor"
	msgDatabaseUnhealthy = "Veritabanına ulaşılamıyor"
)
