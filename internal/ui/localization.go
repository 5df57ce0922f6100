package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeySearch         = "search"
	KeyAdd            = "add"
	KeyEdit           = "edit"
	KeyDelete         = "delete"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyImport         = "import"
	KeySubmit         = "submit"
	KeyBrowse         = "browse"
	KeyTotal          = "total"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeySettings       = "settings"
	KeyAddSong        = "add_song"
	KeyEditSong       = "edit_song"
	KeyTitleField     = "title_field"
	KeyNumberField    = "number_field"
	KeyValidation     = "validation"
	KeyTitleEmpty     = "title_empty"
	KeySelectToEdit   = "select_to_edit"
	KeySelectToDelete = "select_to_delete"
	KeyDeleteConfirm  = "delete_confirm"
	KeyImportPrompt   = "import_prompt"
	KeyImportedCount  = "imported_count"
	KeySavedCount     = "saved_count"
	KeyLoadFailed     = "load_failed"
	KeySaveFailed     = "save_failed"
	KeyError          = "error"
	KeyCatalogFile    = "catalog_file"
	KeyConfirmDelete  = "confirm_delete"
	KeySettingsSaved  = "settings_saved"
	KeyRevealCatalog  = "reveal_catalog"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Church Song App",
		KeySearch:         "Search:",
		KeyAdd:            "Add",
		KeyEdit:           "Edit",
		KeyDelete:         "Delete",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyImport:         "Import from text...",
		KeySubmit:         "Submit",
		KeyBrowse:         "Browse",
		KeyTotal:          "Total:",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeySettings:       "Settings",
		KeyAddSong:        "Add Song",
		KeyEditSong:       "Edit Song",
		KeyTitleField:     "Title",
		KeyNumberField:    "Number (optional)",
		KeyValidation:     "Validation",
		KeyTitleEmpty:     "Title cannot be empty",
		KeySelectToEdit:   "Select a song to edit",
		KeySelectToDelete: "Select a song to delete",
		KeyDeleteConfirm:  "Delete '%s'?",
		KeyImportPrompt:   "Paste songs, one per line. Optionally use 'Title - Number' format.",
		KeyImportedCount:  "Imported %d songs",
		KeySavedCount:     "Saved %d songs to %s",
		KeyLoadFailed:     "Failed to load catalog",
		KeySaveFailed:     "Failed to save catalog",
		KeyError:          "Error",
		KeyCatalogFile:    "Catalog File",
		KeyConfirmDelete:  "Confirm before delete",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyRevealCatalog:  "Reveal Catalog File",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Церковный песенник",
		KeySearch:         "Поиск:",
		KeyAdd:            "Добавить",
		KeyEdit:           "Изменить",
		KeyDelete:         "Удалить",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyImport:         "Импорт из текста...",
		KeySubmit:         "Отправить",
		KeyBrowse:         "Обзор",
		KeyTotal:          "Всего:",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeySettings:       "Настройки",
		KeyAddSong:        "Добавить песню",
		KeyEditSong:       "Изменить песню",
		KeyTitleField:     "Название",
		KeyNumberField:    "Номер (необязательно)",
		KeyValidation:     "Проверка",
		KeyTitleEmpty:     "Название не может быть пустым",
		KeySelectToEdit:   "Выберите песню для изменения",
		KeySelectToDelete: "Выберите песню для удаления",
		KeyDeleteConfirm:  "Удалить '%s'?",
		KeyImportPrompt:   "Вставьте песни, по одной в строке. Формат 'Название - Номер' необязателен.",
		KeyImportedCount:  "Импортировано песен: %d",
		KeySavedCount:     "Сохранено %d песен в %s",
		KeyLoadFailed:     "Не удалось загрузить каталог",
		KeySaveFailed:     "Не удалось сохранить каталог",
		KeyError:          "Ошибка",
		KeyCatalogFile:    "Файл каталога",
		KeyConfirmDelete:  "Подтверждать удаление",
		KeySettingsSaved:  "Настройки успешно сохранены!",
		KeyRevealCatalog:  "Показать файл каталога",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Cancioneiro da Igreja",
		KeySearch:         "Buscar:",
		KeyAdd:            "Adicionar",
		KeyEdit:           "Editar",
		KeyDelete:         "Excluir",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyImport:         "Importar de texto...",
		KeySubmit:         "Enviar",
		KeyBrowse:         "Navegar",
		KeyTotal:          "Total:",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeySettings:       "Configurações",
		KeyAddSong:        "Adicionar Canção",
		KeyEditSong:       "Editar Canção",
		KeyTitleField:     "Título",
		KeyNumberField:    "Número (opcional)",
		KeyValidation:     "Validação",
		KeyTitleEmpty:     "O título não pode estar vazio",
		KeySelectToEdit:   "Selecione uma canção para editar",
		KeySelectToDelete: "Selecione uma canção para excluir",
		KeyDeleteConfirm:  "Excluir '%s'?",
		KeyImportPrompt:   "Cole as canções, uma por linha. O formato 'Título - Número' é opcional.",
		KeyImportedCount:  "%d canções importadas",
		KeySavedCount:     "%d canções salvas em %s",
		KeyLoadFailed:     "Falha ao carregar o catálogo",
		KeySaveFailed:     "Falha ao salvar o catálogo",
		KeyError:          "Erro",
		KeyCatalogFile:    "Arquivo do Catálogo",
		KeyConfirmDelete:  "Confirmar antes de excluir",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
		KeyRevealCatalog:  "Mostrar Arquivo do Catálogo",
	}
}
