package i18n

// Chaves de contexto do Gin compartilhadas entre o middleware de detecção
// de idioma e os helpers de tradução
const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// ServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	ServiceContextKey = "i18n_service"
)
