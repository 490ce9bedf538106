package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/sehyunpark/jindo/internal/domain"
)

// credentialsForm collects a username and password; confirm adds the
// password-confirmation field used on signup.
func credentialsForm(username, password *string, confirm bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().Title("아이디").Value(username).Validate(validateRequired("아이디")),
		huh.NewInput().Title("비밀번호").EchoMode(huh.EchoModePassword).Value(password).Validate(validateRequired("비밀번호")),
	}
	if confirm {
		fields = append(fields, huh.NewInput().
			Title("비밀번호 확인").
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if s != *password {
					return fmt.Errorf("비밀번호가 일치하지 않습니다")
				}
				return nil
			}))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

// slotForm collects a slot's day, period, subject, and class.
func slotForm(day, period *int, subject, classID *string) *huh.Form {
	dayOptions := make([]huh.Option[int], 0, domain.MaxDay)
	for d := 1; d <= domain.MaxDay; d++ {
		dayOptions = append(dayOptions, huh.NewOption(domain.DayNames[d-1], d))
	}
	periodOptions := make([]huh.Option[int], 0, domain.MaxPeriod)
	for p := 1; p <= domain.MaxPeriod; p++ {
		label := fmt.Sprintf("%d교시 (%s)", p, domain.PeriodStartTimes[p-1])
		periodOptions = append(periodOptions, huh.NewOption(label, p))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().Title("요일").Options(dayOptions...).Value(day),
		huh.NewSelect[int]().Title("교시").Options(periodOptions...).Value(period),
		huh.NewInput().Title("과목명").Placeholder("예: 과학, 보충수업 등").Value(subject).Validate(validateRequired("과목명")),
		huh.NewInput().Title("반").Placeholder("예: 3-1 or 관광경영과 등").Value(classID).Validate(validateRequired("반")),
	)).WithShowHelp(false)
}

// progressForm collects a progress entry's content and memo.
func progressForm(content, memo *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("진도 내용").Value(content),
		huh.NewText().Title("메모").Value(memo),
	)).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, answer *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("예").Negative("아니오").Value(answer),
	)).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s을(를) 입력해주세요", field)
		}
		return nil
	}
}
