package view

const StartMessage = `🎮 <b>Скидки на игры в Steam</b>

/deals — список скидок
/search <i>текст</i> — поиск по названию (без текста — сброс)
/minrating <i>0..100</i> — минимальный рейтинг (шаг 5)
/maxprice <i>0..10</i> — максимальная цена, $ (шаг 1)
/sort — сортировка
/reset — сбросить фильтры
/game <i>N</i> — подробности об игре N из списка
/prices <i>название</i> — цены во всех магазинах
/refresh — обновить список
/status — состояние
/autorefresh — вкл/выкл автообновление`

const (
	Loading             = "⏳ Загружаем список скидок..."
	LoadFailed          = "❌ Не удалось загрузить список скидок. Попробуйте /refresh позже."
	NoGamesFound        = "Подходящие игры не найдены."
	DetailsLoading      = "Загружается информация о игре..."
	DescriptionMissing  = "Описание не доступно"
	SteamLinkMissing    = "Ссылка на Steam не доступна"
	DetailsUnavailable  = "⚠️ Подробности недоступны, показаны данные из списка."
	GameMissingArgument = "❌ Использование: /game <code>N</code>, где N — номер игры из /deals"
	GameNotInList       = "❌ Нет игры с таким номером. Откройте /deals."
	GameGone            = "❌ Игра пропала из списка после обновления. Откройте /deals."
	PricesMissingTitle  = "❌ Использование: /prices <i>название</i>"
	PricesFailed        = "❌ Не удалось получить цены. Попробуйте позже."
	PricesEmpty         = "Ничего не найдено."
	RefreshFailed       = "❌ Не удалось обновить список. Показан предыдущий."
	RatingInvalid       = "❌ Рейтинг — число от 0 до 100."
	PriceInvalid        = "❌ Цена — число от 0 до 10."
	SortInvalid         = "❌ Неизвестная сортировка. Выберите из списка:"
	SortChoose          = "Выберите сортировку:"
	FiltersReset        = "✅ Фильтры сброшены."
	AutoRefreshOn       = "🟢 Автообновление включено"
	AutoRefreshOff      = "🔴 Автообновление выключено"
	AutoRefreshFailed   = "❌ Не удалось включить автообновление"
	CallbackFailed      = "❌ Ошибка получения данных"
)

const (
	listHeaderTemplate  = "🎮 <b>Скидки</b> (%d из %d)\n%s\n\n"
	listItemTemplate    = "%d. <b>%s</b>\n    💰 %s$ → %s$ · 📉 %s · ⭐ %s%%\n"
	listMoreTemplate    = "\n<i>…и ещё %d. Уточните фильтры.</i>\n"
	listFooter          = "\nПодробнее: /game <code>N</code>"
	configTemplate      = "🔍 %s · ⭐ от %s%% · 💰 до %s$ · ↕️ %s"
	refreshedTemplate   = "✅ Список обновлён: %d игр."
	ratingSetTemplate   = "✅ Минимальный рейтинг: %s%%"
	priceSetTemplate    = "✅ Максимальная цена: %s$"
	sortSetTemplate     = "✅ Сортировка: %s"
	searchSetTemplate   = "🔍 Поиск: «%s»"
	searchCleared       = "🔍 Поиск сброшен"
	statusTemplate      = "📊 <b>Состояние</b>\n\n📦 <b>Игр в списке:</b> %d\n🕒 <b>Обновлено:</b> %s\n🔄 <b>Автообновление:</b> %s"
	detailsTemplate     = "🎮 <b>%s</b>\n\n💰 <b>Цена:</b> %s$ → %s$\n📉 <b>Скидка:</b> %s\n⭐ <b>Рейтинг:</b> %s%%\n"
	priceQuoteTemplate  = "%d. <b>%s</b> — от %s$\n"
	pricesHeader        = "💲 <b>Цены</b>\n\n"
	notLoadedYet        = "ещё не загружен"
	noSearch            = "все"
	noDiscount          = "—"
	statusOn            = "🟢 вкл"
	statusOff           = "🔴 выкл"
	descriptionMaxRunes = 700
)
