// Package auth builds the splash, login and signup screens.
package auth

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"moodtodo/internal/session"
)

var splashCharacters = []string{"😊", "🌟", "🎀", "🐱", "🌸", "🦄"}

// Callbacks connects the screens to the application.
type Callbacks struct {
	OnLogin    func(email, password string) error
	OnSignup   func(name, email, password string) error
	OnNavigate func(screen session.Screen)
}

func (callbacks Callbacks) navigate(screen session.Screen) {
	if callbacks.OnNavigate != nil {
		callbacks.OnNavigate(screen)
	}
}

// Splash returns the welcome screen. The character cycles until ctx is done.
func Splash(ctx context.Context, callbacks Callbacks) fyne.CanvasObject {
	character := canvas.NewText(splashCharacters[0], theme.Color(theme.ColorNameForeground))
	character.TextSize = 96
	character.Alignment = fyne.TextAlignCenter

	title := widget.NewLabelWithStyle("My Cute To-Do List ✨", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	subtitle := widget.NewLabelWithStyle("Stay organized with adorable animations and happy vibes! 🎀", fyne.TextAlignCenter, fyne.TextStyle{})
	subtitle.Wrapping = fyne.TextWrapWord

	enter := widget.NewButton("Let's Begin! 🚀", func() {
		callbacks.navigate(session.ScreenLogin)
	})
	enter.Importance = widget.HighImportance

	icons := widget.NewLabelWithStyle("⭐ ❤️ 🌸 🎀 ✨", fyne.TextAlignCenter, fyne.TextStyle{})

	go cycleCharacter(ctx, character)

	return container.NewCenter(container.NewVBox(character, title, subtitle, container.NewCenter(enter), icons))
}

// Login returns the login form.
func Login(callbacks Callbacks) fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("📧 Your email")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("🔐 Password")
	status := widget.NewLabel("")
	status.Hide()

	var submit *widget.Button
	submit = widget.NewButton("Login 🎀", func() {
		if callbacks.OnLogin == nil {
			return
		}
		submit.SetText("Logging in... ✨")
		submit.Disable()
		err := callbacks.OnLogin(email.Text, password.Text)
		submit.SetText("Login 🎀")
		submit.Enable()
		if err != nil {
			showError(status, "Please enter your email 💌")
			return
		}
		callbacks.navigate(session.ScreenDashboard)
	})
	submit.Importance = widget.HighImportance
	email.OnSubmitted = func(string) { submit.OnTapped() }
	password.OnSubmitted = func(string) { submit.OnTapped() }

	switchLink := widget.NewButton("Don't have an account? Sign up here! ✨", func() {
		callbacks.navigate(session.ScreenSignup)
	})
	switchLink.Importance = widget.LowImportance

	return authBox("Welcome Back! 🌸", "🐱", email, password, status, submit, switchLink)
}

// Signup returns the registration form.
func Signup(callbacks Callbacks) fyne.CanvasObject {
	name := widget.NewEntry()
	name.SetPlaceHolder("👤 Your cute name")
	email := widget.NewEntry()
	email.SetPlaceHolder("📧 Email address")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("🔐 Create password")
	confirm := widget.NewPasswordEntry()
	confirm.SetPlaceHolder("🔏 Confirm password")
	status := widget.NewLabel("")
	status.Hide()

	submit := widget.NewButton("Create Account 🎉", func() {
		if callbacks.OnSignup == nil {
			return
		}
		if msg := ValidateSignup(name.Text, email.Text, password.Text, confirm.Text); msg != "" {
			showError(status, msg)
			return
		}
		if err := callbacks.OnSignup(name.Text, email.Text, password.Text); err != nil {
			showError(status, "Please tell us your name or email 💌")
			return
		}
		callbacks.navigate(session.ScreenDashboard)
	})
	submit.Importance = widget.HighImportance

	switchLink := widget.NewButton("Already have an account? Login here! 🌸", func() {
		callbacks.navigate(session.ScreenLogin)
	})
	switchLink.Importance = widget.LowImportance

	return authBox("Join Us! 🌟", "🦄", name, email, password, confirm, status, submit, switchLink)
}

// ValidateSignup returns a message for the first problem in the form, or an
// empty string when the form can be submitted.
func ValidateSignup(name, email, password, confirm string) string {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(email) == "" {
		return "Please tell us your name or email 💌"
	}
	if password != confirm {
		return "Passwords don't match 🙈"
	}
	return ""
}

func authBox(title, mascot string, objects ...fyne.CanvasObject) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	heading.SizeName = theme.SizeNameHeadingText

	character := canvas.NewText(mascot, theme.Color(theme.ColorNameForeground))
	character.TextSize = 56
	character.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(heading)
	form.Objects = append(form.Objects, objects...)
	form.Add(character)

	box := container.NewGridWrap(fyne.NewSize(360, form.MinSize().Height), form)
	return container.NewCenter(box)
}

func showError(status *widget.Label, message string) {
	status.SetText(message)
	status.Importance = widget.DangerImportance
	status.Show()
}

func cycleCharacter(ctx context.Context, character *canvas.Text) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			next := splashCharacters[rng.Intn(len(splashCharacters))]
			fyne.Do(func() {
				character.Text = next
				character.Refresh()
			})
		}
	}
}
