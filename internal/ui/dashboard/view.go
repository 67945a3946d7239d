// Package dashboard builds the main screen: tasks, progress, mood and timer.
package dashboard

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"moodtodo/internal/app"
	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
)

// Callbacks lets the window owner react to dashboard actions.
type Callbacks struct {
	OnLogout      func()
	OnPreferences func()
	OnMoodChanged func(mood.Mood)
	OnKindChanged func(countdown.Kind)
	OnMuteChanged func(bool)
}

// View is the dashboard screen. Its methods must run on the UI goroutine.
type View struct {
	app       *app.App
	callbacks Callbacks
	logger    *slog.Logger

	filter   tasks.Filter
	category tasks.Category
	visible  []tasks.Task

	background  *canvas.Rectangle
	moodBadge   *canvas.Text
	greeting    *widget.Label
	subtitle    *widget.Label
	audioStatus *widget.Label
	muteButton  *widget.Button

	input    *widget.Entry
	list     *widget.List
	emptyMsg *widget.Label

	statsTotal   *widget.Label
	statsDone    *widget.Label
	statsLeft    *widget.Label
	progress     *widget.ProgressBar
	progressText *widget.Label

	moodButtons map[mood.Mood]*widget.Button
	mascot      *canvas.Text

	kindButtons map[countdown.Kind]*widget.Button
	timerLabel  *canvas.Text
	timerStatus *widget.Label
	startButton *widget.Button

	footer *widget.Label

	content fyne.CanvasObject
}

// New builds the dashboard for application.
func New(application *app.App, callbacks Callbacks, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	view := &View{
		app:         application,
		callbacks:   callbacks,
		logger:      logger.With("component", "dashboard"),
		filter:      tasks.FilterAll,
		category:    tasks.CategoryPersonal,
		moodButtons: make(map[mood.Mood]*widget.Button),
		kindButtons: make(map[countdown.Kind]*widget.Button),
	}
	view.content = view.build()
	view.Refresh()
	return view
}

// Content returns the root object of the screen.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// Refresh re-reads every piece of state.
func (view *View) Refresh() {
	view.RefreshTasks()
	view.RefreshMood()
	view.ApplyAudio(view.app.Audio().State())
	timer := view.app.Timer()
	view.ApplyTimer(countdown.Event{
		Type:      countdown.EventStateChange,
		Kind:      timer.Kind(),
		Running:   timer.Running(),
		Remaining: timer.Remaining(),
	})
}

// RefreshTasks redraws the list, the stats and the footer.
func (view *View) RefreshTasks() {
	store := view.app.Tasks()
	view.visible = store.Filter(view.filter)
	view.list.Refresh()
	if len(view.visible) == 0 {
		view.emptyMsg.Show()
	} else {
		view.emptyMsg.Hide()
	}

	stats := store.Stats()
	view.statsTotal.SetText(fmt.Sprintf("%d\nTotal", stats.Total))
	view.statsDone.SetText(fmt.Sprintf("%d\nDone ✅", stats.Completed))
	view.statsLeft.SetText(fmt.Sprintf("%d\nLeft ⏳", stats.Active))
	view.progress.SetValue(float64(stats.Percent) / 100)
	view.progressText.SetText(ProgressCaption(stats))
	view.refreshFooter()
}

// RefreshMood applies the current mood's colours and badges.
func (view *View) RefreshMood() {
	current := view.app.Mood()
	selected := mood.ThemeFor(current)
	view.background.FillColor = selected.Color
	view.background.Refresh()
	view.moodBadge.Text = selected.Emoji
	view.moodBadge.Refresh()
	for value, button := range view.moodButtons {
		if value == current {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
	view.greeting.SetText(view.app.Greeting())
	view.refreshFooter()
}

// ApplyAudio updates everything that depends on the audio state.
func (view *View) ApplyAudio(snapshot audio.Snapshot) {
	view.subtitle.SetText(Subtitle(snapshot))
	view.audioStatus.SetText(view.app.StatusLine())
	if snapshot.Muted {
		view.muteButton.SetIcon(theme.VolumeMuteIcon())
		view.muteButton.SetText("Unmute")
	} else {
		view.muteButton.SetIcon(theme.VolumeUpIcon())
		view.muteButton.SetText("Mute")
	}
	for _, button := range view.moodButtons {
		if snapshot.Celebrating {
			button.Disable()
		} else {
			button.Enable()
		}
	}

	current := mood.ThemeFor(view.app.Mood())
	if snapshot.Celebrating {
		view.mascot.Text = "🎉"
	} else {
		view.mascot.Text = current.Emoji
	}
	view.mascot.Refresh()
	view.timerStatus.SetText(view.app.TimerStatusLine())
	view.refreshFooter()
}

// ApplyTimer updates the countdown widgets.
func (view *View) ApplyTimer(event countdown.Event) {
	view.timerLabel.Text = countdown.FormatRemaining(event.Remaining)
	view.timerLabel.Refresh()
	for kind, button := range view.kindButtons {
		if kind == event.Kind {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.MediumImportance
		}
		button.Refresh()
	}
	if event.Running {
		view.startButton.SetText("Pause ⏸️")
		view.startButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.startButton.SetText("Start ▶️")
		view.startButton.SetIcon(theme.MediaPlayIcon())
	}
	view.timerStatus.SetText(view.app.TimerStatusLine())
}

func (view *View) build() fyne.CanvasObject {
	view.background = canvas.NewRectangle(color.Transparent)
	header := view.buildHeader()
	left := container.NewVBox(view.buildTasks(), view.buildStats())
	moods := view.buildMoods()
	timer := view.buildTimer()
	right := container.NewVBox(moods, timer, container.NewCenter(view.mascot))
	columns := container.NewGridWithColumns(2, left, right)

	view.footer = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	view.footer.Wrapping = fyne.TextWrapWord

	body := container.NewBorder(header, view.footer, nil, nil, container.NewVScroll(columns))
	return container.NewStack(view.background, container.NewPadded(body))
}

func (view *View) buildHeader() fyne.CanvasObject {
	view.moodBadge = canvas.NewText("😊", theme.Color(theme.ColorNameForeground))
	view.moodBadge.TextSize = 36

	view.greeting = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.greeting.SizeName = theme.SizeNameSubHeadingText
	view.subtitle = widget.NewLabel("")
	view.audioStatus = widget.NewLabel("")

	view.muteButton = widget.NewButtonWithIcon("Mute", theme.VolumeUpIcon(), func() {
		muted := view.app.ToggleMute()
		if view.callbacks.OnMuteChanged != nil {
			view.callbacks.OnMuteChanged(muted)
		}
	})
	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if view.callbacks.OnPreferences != nil {
			view.callbacks.OnPreferences()
		}
	})
	logout := widget.NewButton("Logout 🚪", func() {
		if view.callbacks.OnLogout != nil {
			view.callbacks.OnLogout()
		}
	})

	titles := container.NewVBox(view.greeting, view.subtitle)
	controls := container.NewHBox(view.audioStatus, view.muteButton, settings, logout)
	return container.NewHBox(view.moodBadge, titles, layout.NewSpacer(), controls)
}

func (view *View) buildTasks() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("My Cute Tasks ✨", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	view.input = widget.NewEntry()
	view.input.SetPlaceHolder("Add a new cute task... ✏️")
	view.input.OnSubmitted = func(string) { view.addTask() }

	categoryOptions := make([]string, 0, len(tasks.Categories))
	for _, category := range tasks.Categories {
		categoryOptions = append(categoryOptions, CategoryLabel(category))
	}
	categories := widget.NewRadioGroup(categoryOptions, func(selected string) {
		for _, category := range tasks.Categories {
			if CategoryLabel(category) == selected {
				view.category = category
			}
		}
	})
	categories.Horizontal = true
	categories.Required = true
	categories.SetSelected(CategoryLabel(view.category))

	add := widget.NewButton("Add Task ⭐", view.addTask)
	add.Importance = widget.HighImportance

	filters := widget.NewRadioGroup([]string{"All", "Active", "Completed"}, func(selected string) {
		view.filter = FilterFromLabel(selected)
		view.RefreshTasks()
	})
	filters.Horizontal = true
	filters.Required = true
	filters.Selected = "All"

	view.emptyMsg = widget.NewLabelWithStyle("No tasks here yet 🌈", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	view.list = widget.NewList(
		func() int { return len(view.visible) },
		func() fyne.CanvasObject {
			toggle := widget.NewButton("⬜", nil)
			toggle.Importance = widget.LowImportance
			text := widget.NewLabel("")
			text.Truncation = fyne.TextTruncateEllipsis
			remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
			remove.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, toggle, remove, text)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id >= len(view.visible) {
				return
			}
			task := view.visible[id]
			row := item.(*fyne.Container)
			text := row.Objects[0].(*widget.Label)
			toggle := row.Objects[1].(*widget.Button)
			remove := row.Objects[2].(*widget.Button)

			text.SetText(TaskLine(task))
			if task.Completed {
				toggle.SetText("✅")
				text.TextStyle = fyne.TextStyle{Italic: true}
			} else {
				toggle.SetText("⬜")
				text.TextStyle = fyne.TextStyle{}
			}
			text.Refresh()
			toggle.OnTapped = func() { view.toggleTask(task.ID) }
			remove.OnTapped = func() { view.deleteTask(task.ID) }
		},
	)
	listArea := container.NewStack(view.list, container.NewCenter(view.emptyMsg))
	form := container.NewBorder(nil, nil, nil, add, view.input)
	top := container.NewVBox(title, form, categories, filters)
	return container.NewBorder(top, nil, nil, nil, container.NewGridWrap(fyne.NewSize(420, 260), listArea))
}

func (view *View) buildStats() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("📊 Progress", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	view.statsTotal = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.statsDone = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.statsLeft = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	view.progress = widget.NewProgressBar()
	view.progress.TextFormatter = func() string { return "" }
	view.progressText = widget.NewLabel("")

	counts := container.NewGridWithColumns(3, view.statsTotal, view.statsDone, view.statsLeft)
	return widget.NewCard("", "", container.NewVBox(title, counts, view.progress, view.progressText))
}

func (view *View) buildMoods() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("How are you feeling? 💭", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	buttons := container.NewGridWithColumns(3)
	for _, option := range mood.All() {
		value := option.Mood
		button := widget.NewButton(fmt.Sprintf("%s %s", option.Emoji, option.Label), func() {
			view.changeMood(value)
		})
		view.moodButtons[value] = button
		buttons.Add(button)
	}
	return widget.NewCard("", "", container.NewVBox(title, buttons))
}

func (view *View) buildTimer() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("⏰ Focus Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	kinds := container.NewGridWithColumns(len(countdown.Kinds))
	for _, kind := range countdown.Kinds {
		value := kind
		button := widget.NewButton(kind.Label(), func() {
			view.app.Timer().SelectKind(value)
			if view.callbacks.OnKindChanged != nil {
				view.callbacks.OnKindChanged(value)
			}
		})
		view.kindButtons[value] = button
		kinds.Add(button)
	}

	view.timerLabel = canvas.NewText("25:00", theme.Color(theme.ColorNameForeground))
	view.timerLabel.TextSize = 56
	view.timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.timerLabel.Alignment = fyne.TextAlignCenter

	view.startButton = widget.NewButtonWithIcon("Start ▶️", theme.MediaPlayIcon(), func() {
		timer := view.app.Timer()
		if timer.Running() {
			timer.Pause()
		} else {
			timer.Start()
		}
	})
	view.startButton.Importance = widget.HighImportance
	reset := widget.NewButtonWithIcon("Reset 🔄", theme.MediaReplayIcon(), func() {
		view.app.Timer().Reset()
	})

	view.timerStatus = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	view.mascot = canvas.NewText("😊", theme.Color(theme.ColorNameForeground))
	view.mascot.TextSize = 64
	view.mascot.Alignment = fyne.TextAlignCenter

	controls := container.NewGridWithColumns(2, view.startButton, reset)
	return widget.NewCard("", "", container.NewVBox(title, kinds, view.timerLabel, controls, view.timerStatus))
}

func (view *View) addTask() {
	if _, err := view.app.AddTask(view.input.Text, view.category); err != nil {
		if !errors.Is(err, tasks.ErrEmptyText) {
			view.logger.Warn("add task", "error", err)
		}
		return
	}
	view.input.SetText("")
	view.RefreshTasks()
}

func (view *View) toggleTask(id string) {
	if _, err := view.app.ToggleTask(id); err != nil {
		view.logger.Warn("toggle task", "id", id, "error", err)
	}
	view.RefreshTasks()
}

func (view *View) deleteTask(id string) {
	if err := view.app.DeleteTask(id); err != nil {
		view.logger.Warn("delete task", "id", id, "error", err)
	}
	view.RefreshTasks()
}

func (view *View) changeMood(value mood.Mood) {
	if err := view.app.ChangeMood(value); err != nil {
		view.logger.Debug("mood change refused", "mood", value, "error", err)
		return
	}
	view.RefreshMood()
	if view.callbacks.OnMoodChanged != nil {
		view.callbacks.OnMoodChanged(value)
	}
}

func (view *View) refreshFooter() {
	if view.footer == nil {
		return
	}
	view.footer.SetText(Footer(view.app.Tasks().Stats(), view.app.Audio().State(), view.app.Mood()))
}
