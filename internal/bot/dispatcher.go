// Package bot реализует команды Telegram-бота для просмотра парков и троп.
// Пакет не обращается к Telegram сам: Dispatcher возвращает сообщения,
// которые отправляет вызывающий код.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Tibebua/NationalPark/internal/model"
	"github.com/Tibebua/NationalPark/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const parkCallbackPrefix = "PARK_"

// maxButtonLen - длина подписи кнопки в символах.
const maxButtonLen = 30

const helpText = `Команды:
/parks - список национальных парков
/park <ид> - информация о парке
/trails - все тропы
/trails <ид_парка> - тропы парка`

// Dispatcher отвечает на команды и нажатия кнопок.
type Dispatcher struct {
	parks  *service.NationalParkService
	trails *service.TrailService
	log    *slog.Logger
}

// NewDispatcher создает обработчик команд бота.
func NewDispatcher(parks *service.NationalParkService, trails *service.TrailService, log *slog.Logger) *Dispatcher {
	return &Dispatcher{parks: parks, trails: trails, log: log}
}

// Handle возвращает ответы на одно обновление. Пустой результат - отвечать нечего.
func (d *Dispatcher) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	if cq := update.CallbackQuery; cq != nil {
		return d.handleCallback(ctx, cq)
	}
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, helpText)}
	}

	args := strings.TrimSpace(msg.CommandArguments())
	switch msg.Command() {
	case "start":
		name := ""
		if msg.From != nil {
			name = msg.From.FirstName
		}
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, fmt.Sprintf("Здравствуйте, %s!\n\n%s", name, helpText))}
	case "parks":
		return []tgbotapi.Chattable{d.listParks(ctx, chatID)}
	case "park":
		id, err := strconv.Atoi(args)
		if err != nil {
			return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Используйте: /park <ид>")}
		}
		return []tgbotapi.Chattable{d.parkDetails(ctx, chatID, id)}
	case "trails":
		if args == "" {
			return []tgbotapi.Chattable{d.listTrails(ctx, chatID)}
		}
		id, err := strconv.Atoi(args)
		if err != nil {
			return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Используйте: /trails <ид_парка>")}
		}
		return []tgbotapi.Chattable{d.parkTrails(ctx, chatID, id)}
	default:
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, helpText)}
	}
}

func (d *Dispatcher) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) []tgbotapi.Chattable {
	out := []tgbotapi.Chattable{tgbotapi.NewCallback(cq.ID, "")}

	chatID := int64(0)
	if cq.Message != nil && cq.Message.Chat != nil {
		chatID = cq.Message.Chat.ID
	} else if cq.From != nil {
		chatID = cq.From.ID
	}
	if chatID == 0 || !strings.HasPrefix(cq.Data, parkCallbackPrefix) {
		return out
	}

	id, err := strconv.Atoi(strings.TrimPrefix(cq.Data, parkCallbackPrefix))
	if err != nil {
		return out
	}
	return append(out, d.parkDetails(ctx, chatID, id), d.parkTrails(ctx, chatID, id))
}

func (d *Dispatcher) listParks(ctx context.Context, chatID int64) tgbotapi.Chattable {
	parks, err := d.parks.List(ctx)
	if err != nil {
		d.log.Error("бот: ошибка получения парков", "err", err)
		return tgbotapi.NewMessage(chatID, "Ошибка получения парков.")
	}
	if len(parks) == 0 {
		return tgbotapi.NewMessage(chatID, "Парков пока нет.")
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(parks))
	for _, p := range parks {
		btn := tgbotapi.NewInlineKeyboardButtonData(truncate(p.Name, maxButtonLen), fmt.Sprintf("%s%d", parkCallbackPrefix, p.ID))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf("Найдено парков: %d", len(parks)))
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	return reply
}

func (d *Dispatcher) parkDetails(ctx context.Context, chatID int64, id int) tgbotapi.Chattable {
	park, err := d.parks.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		return tgbotapi.NewMessage(chatID, fmt.Sprintf("Парк #%d не найден.", id))
	}
	if err != nil {
		d.log.Error("бот: ошибка получения парка", "id", id, "err", err)
		return tgbotapi.NewMessage(chatID, "Ошибка получения парка.")
	}
	return tgbotapi.NewMessage(chatID, FormatPark(*park))
}

func (d *Dispatcher) listTrails(ctx context.Context, chatID int64) tgbotapi.Chattable {
	trails, err := d.trails.List(ctx)
	if err != nil {
		d.log.Error("бот: ошибка получения троп", "err", err)
		return tgbotapi.NewMessage(chatID, "Ошибка получения троп.")
	}
	if len(trails) == 0 {
		return tgbotapi.NewMessage(chatID, "Троп пока нет.")
	}
	return tgbotapi.NewMessage(chatID, FormatTrails(trails))
}

func (d *Dispatcher) parkTrails(ctx context.Context, chatID int64, parkID int) tgbotapi.Chattable {
	trails, err := d.trails.ListByPark(ctx, parkID)
	if err != nil {
		d.log.Error("бот: ошибка получения троп парка", "park_id", parkID, "err", err)
		return tgbotapi.NewMessage(chatID, "Ошибка получения троп.")
	}
	if len(trails) == 0 {
		return tgbotapi.NewMessage(chatID, fmt.Sprintf("В парке #%d нет троп.", parkID))
	}
	return tgbotapi.NewMessage(chatID, FormatTrails(trails))
}

// FormatPark возвращает описание парка для сообщения.
func FormatPark(p model.NationalPark) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", p.ID, p.Name)
	if p.State != "" {
		fmt.Fprintf(&b, "\nРегион: %s", p.State)
	}
	if p.Established != nil {
		fmt.Fprintf(&b, "\nОснован: %s", p.Established.Format("02.01.2006"))
	}
	return b.String()
}

// FormatTrails возвращает список троп, по строке на тропу.
func FormatTrails(trails []model.Trail) string {
	lines := make([]string, 0, len(trails))
	for _, t := range trails {
		line := fmt.Sprintf("#%d %s - %.1f км, +%.0f м, %s", t.ID, t.Name, t.Distance, t.Elevation, t.Difficulty)
		if t.NationalPark != nil {
			line += " (" + t.NationalPark.Name + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
