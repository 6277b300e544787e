package errmsg

// Lang is a message language code.
type Lang string

const (
	Spanish Lang = "es"
	English Lang = "en"

	DefaultLang = Spanish
)

// Key identifies a user-facing message.
type Key int

const (
	MsgLoading Key = iota
	MsgLoadFailed
	MsgArtistNotFound
	MsgFans
	MsgAlbums
	MsgTopTracks
	MsgNoPreview
	MsgInstallTitle
	MsgInstallQuestion
	MsgInstallAccept
	MsgInstallDecline
	MsgHelpTitle
)

var messages = map[Lang]map[Key]string{
	Spanish: {
		MsgLoading:         "Cargando...",
		MsgLoadFailed:      "Error al cargar los datos. Por favor, intenta más tarde.",
		MsgArtistNotFound:  "No se encontró información del artista",
		MsgFans:            "Fans",
		MsgAlbums:          "Álbumes",
		MsgTopTracks:       "Top Canciones",
		MsgNoPreview:       "Vista previa no disponible",
		MsgInstallTitle:    "Instalar",
		MsgInstallQuestion: "¿Quieres instalar la aplicación?",
		MsgInstallAccept:   "Aceptar",
		MsgInstallDecline:  "Cancelar",
		MsgHelpTitle:       "Atajos de teclado",
	},
	English: {
		MsgLoading:         "Loading...",
		MsgLoadFailed:      "Could not load data. Please try again later.",
		MsgArtistNotFound:  "Artist information not found",
		MsgFans:            "Fans",
		MsgAlbums:          "Albums",
		MsgTopTracks:       "Top Tracks",
		MsgNoPreview:       "Preview not available",
		MsgInstallTitle:    "Install",
		MsgInstallQuestion: "Do you want to install the app?",
		MsgInstallAccept:   "Accept",
		MsgInstallDecline:  "Cancel",
		MsgHelpTitle:       "Keyboard shortcuts",
	},
}

// Catalog resolves message keys for one language.
type Catalog struct {
	lang Lang
}

// NewCatalog returns the catalog for lang, falling back to DefaultLang for
// unknown codes.
func NewCatalog(lang string) Catalog {
	l := Lang(lang)
	if _, ok := messages[l]; !ok {
		l = DefaultLang
	}
	return Catalog{lang: l}
}

// Lang returns the resolved language.
func (c Catalog) Lang() Lang {
	if c.lang == "" {
		return DefaultLang
	}
	return c.lang
}

// Get returns the message for k.
func (c Catalog) Get(k Key) string {
	if msg, ok := messages[c.Lang()][k]; ok {
		return msg
	}
	return messages[DefaultLang][k]
}
