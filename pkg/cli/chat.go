package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/remedy/pkg/cli/config"
	"github.com/secmon-lab/remedy/pkg/domain/model"
	"github.com/secmon-lab/remedy/pkg/domain/types"
	"github.com/secmon-lab/remedy/pkg/service/safety"
	"github.com/secmon-lab/remedy/pkg/usecase"
	"github.com/secmon-lab/remedy/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdChat() *cli.Command {
	var deviceType string
	var deviceOS string
	var techLevel string
	var llmCfg config.LLM
	var knowledgeCfg config.Knowledge

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "device-type",
			Usage:       "Device type hint (e.g. laptop, desktop, phone)",
			Sources:     cli.EnvVars("REMEDY_DEVICE_TYPE"),
			Destination: &deviceType,
		},
		&cli.StringFlag{
			Name:        "device-os",
			Usage:       "Operating system hint (e.g. windows, macos)",
			Sources:     cli.EnvVars("REMEDY_DEVICE_OS"),
			Destination: &deviceOS,
		},
		&cli.StringFlag{
			Name:        "technical-level",
			Usage:       "Technical level of explanations (beginner, intermediate, advanced)",
			Value:       types.TechnicalLevelBeginner.String(),
			Sources:     cli.EnvVars("REMEDY_TECHNICAL_LEVEL"),
			Destination: &techLevel,
		},
	}
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)

	return &cli.Command{
		Name:      "chat",
		Aliases:   []string{"c"},
		Usage:     "Diagnose a problem from the terminal. With no argument, starts an interactive session",
		ArgsUsage: "[problem description]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			level := types.TechnicalLevel(techLevel)
			if err := level.Validate(); err != nil {
				return err
			}

			var device *model.DeviceInfo
			if deviceType != "" || deviceOS != "" {
				device = &model.DeviceInfo{DeviceType: deviceType, OS: deviceOS}
			}

			repo, err := buildRepository(ctx, &knowledgeCfg)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc, err := buildUseCases(ctx, repo, &llmCfg)
			if err != nil {
				return err
			}

			if problem := strings.TrimSpace(strings.Join(c.Args().Slice(), " ")); problem != "" {
				return runChatTurn(ctx, uc, "", problem, device, level)
			}
			return runChatLoop(ctx, uc, device, level)
		},
	}
}

func runChatTurn(ctx context.Context, uc *usecase.UseCases, sessionID model.SessionID, message string, device *model.DeviceInfo, level types.TechnicalLevel) error {
	out, err := uc.Chat(ctx, usecase.ChatInput{
		SessionID:      sessionID,
		Message:        message,
		Device:         device,
		TechnicalLevel: level,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to diagnose")
	}

	printDiagnosis(message, out.Diagnosis)
	return nil
}

func runChatLoop(ctx context.Context, uc *usecase.UseCases, device *model.DeviceInfo, level types.TechnicalLevel) error {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("remedy — describe your problem, or 'exit' to quit")

	var sessionID model.SessionID
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.GreenString("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		out, err := uc.Chat(ctx, usecase.ChatInput{
			SessionID:      sessionID,
			Message:        line,
			Device:         device,
			TechnicalLevel: level,
		})
		if err != nil {
			fmt.Println(color.RedString("error: %v", err))
			continue
		}
		sessionID = out.SessionID

		printDiagnosis(line, out.Diagnosis)
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read input")
	}
	return nil
}

func printDiagnosis(problem string, d *model.Diagnosis) {
	fmt.Println()
	if briefing := safety.Briefing(problem, d.SolutionSteps); briefing != "" {
		fmt.Println(color.YellowString(briefing))
		fmt.Println()
	}
	fmt.Println(d.Response)
	fmt.Println()

	if d.RequiresProfessionalHelp {
		fmt.Println(color.RedString("⚠ This issue likely needs a professional technician."))
	}
	for _, w := range d.Warnings {
		fmt.Println(color.YellowString("⚠ %s", w))
	}
	if len(d.Sources) > 0 {
		fmt.Printf("%s %s\n", color.HiBlackString("sources:"), color.HiBlackString(strings.Join(d.Sources, "; ")))
	}
	fmt.Println()
}
