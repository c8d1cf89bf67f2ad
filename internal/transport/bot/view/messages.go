// Package view holds every operator-facing text and keyboard of the bot.
package view

const StartMessage = `🧾 <b>Учёт лотов</b>

Перешли сюда уведомление о покупке — лот запишется автоматически.

<b>Команды:</b>
/add игра | описание | цена — записать лот вручную
/stock — лоты на складе
/listed — выставленные лоты
/calc «id» «профит» — собрать объявление для лота
/posted «id» — отметить выставленным
/sold «id» «цена» — отметить проданным
/restored «id» — отметить восстановленным
/stats — сводка за всё время
/month [ГГГГ-ММ] — сводка за месяц
/export — выгрузить таблицу
/reset — очистить учёт`

const (
	AddUsage      = "Формат: /add игра | описание | цена"
	CalcUsage     = "Формат: /calc «id» «профит», например /calc 3 1"
	PostedUsage   = "Формат: /posted «id»"
	SoldUsage     = "Формат: /sold «id» «цена»"
	RestoredUsage = "Формат: /restored «id»"
	MonthUsage    = "Формат: /month 2025-07"

	InvalidID    = "Не понял номер лота"
	InvalidPrice = "Не понял цену, пример: 5.53"

	StockEmpty  = "Склад пуст"
	ListedEmpty = "Выставленных лотов нет"

	AskProfit      = "Сколько хочешь заработать на лоте? Напиши сумму в $"
	ProfitRetry    = "Не понял сумму. Напиши число, например 1.5"
	AskDescription = "Описания для этой игры ещё нет. Пришли текст описания"
	AlreadyListed  = "Лот уже выставлен"

	ResetQuestion  = "Точно стереть весь учёт и описания? Это необратимо."
	ResetDone      = "Учёт очищен"
	ResetCancelled = "Ок, ничего не трогаю"

	ExportCaption = "Текущая таблица учёта"
	ExportEmpty   = "Таблица пуста"
)
