package view

const StartMessage = `👋 <b>FD rates bot</b>

Доступные команды:
/status — журнал последних обновлений
/sources — список отслеживаемых источников
/refresh &lt;slug|all&gt; — запустить обновление`

const (
	StatusError = "❌ Не удалось получить журнал обновлений"
	StatusEmpty = "Журнал пуст — обновления ещё не запускались"

	StatusPaginationTemplate = "📊 <b>Журнал обновлений</b> (Стр. %d/%d)\n\n"
	StatusItemTemplate       = "%s <b>%s</b>\n%d записей · %s\n\n"

	RefreshMissingArgument = "❌ Использование: /refresh <code>slug</code> или /refresh all"
	RefreshUnknownSource   = "❌ Неизвестный источник: <code>%s</code>"
	RefreshStarted         = "⏳ Обновление <b>%s</b> запущено"
	RefreshAllStarted      = "⏳ Обновление всех источников запущено"
)
