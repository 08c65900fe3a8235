package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
	"github.com/leetforge/problem-importer/importer"
	"github.com/leetforge/problem-importer/storage"
)

type discordHook struct {
	client webhook.Client
}

func (h discordHook) AfterImport(ctx context.Context, p importer.ImportedProblem) error {
	_, err := h.client.CreateMessage(newProblemMessage(p), rest.WithCtx(ctx))
	return err
}

func newProblemMessage(p importer.ImportedProblem) discord.WebhookMessageCreate {
	public := 0
	for _, tc := range p.TestCases {
		if !tc.IsHidden {
			public++
		}
	}
	tags := strings.Join(p.Statement.TagNames(), ", ")
	if tags == "" {
		tags = "-"
	}
	return discord.NewWebhookMessageCreateBuilder().
		AddEmbeds(discord.NewEmbedBuilder().
			SetTitlef("New problem added: %s", p.Statement.Title).
			SetColor(0x00ff00).
			AddField("ID", fmt.Sprint(p.ID), true).
			AddField("Difficulty", p.Statement.Difficulty, true).
			AddField("Tags", tags, false).
			AddField("Test cases", fmt.Sprintf("%d (%d public)", len(p.TestCases), public), false).
			Build()).
		Build()
}

type archiveHook struct {
	client storage.Client
}

func (h archiveHook) AfterImport(ctx context.Context, p importer.ImportedProblem) error {
	if len(p.TestCases) == 0 {
		return nil
	}
	tarGz, err := storage.BuildTestCaseTarGz(archiveFiles(p.TestCases))
	if err != nil {
		return err
	}
	defer os.Remove(tarGz)
	return h.client.UploadTestCases(ctx, p.ID, tarGz)
}

func archiveFiles(files []importer.TestCaseFile) []storage.TestCaseFiles {
	res := make([]storage.TestCaseFiles, 0, len(files))
	for _, f := range files {
		res = append(res, storage.TestCaseFiles{Input: f.InputPath, Output: f.OutputPath})
	}
	return res
}
