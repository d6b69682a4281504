package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) CreateIdea(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Enter idea name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	description, err := GetSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	stage, err := GetSimpleText(a.reader, "Enter stage (e.g. concept, prototype)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	idea, err := a.api.CreateIdea(ctx, name, description, stage)
	if err != nil {
		log.Printf("Create unsuccessful: %s", err.Error())
		return
	}

	fmt.Printf("Created idea %s: %s\n", idea.ID, idea.Name)
}

func (a *App) ListIdeas(ctx context.Context) {
	ideas, err := a.api.ListIdeas(ctx)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return
	}

	if len(ideas) == 0 {
		fmt.Println("No ideas yet")
		return
	}
	for _, idea := range ideas {
		fmt.Printf("%s  %-30s  %s\n", idea.ID, idea.Name, idea.Stage)
	}
}
