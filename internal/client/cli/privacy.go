package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) SetPrivacy(ctx context.Context, kind, id, setting string) {
	var isPrivate bool
	switch setting {
	case "on":
		isPrivate = true
	case "off":
		isPrivate = false
	default:
		fmt.Println("Usage: privacy <file|image> <id> <on|off>")
		return
	}

	var err error
	switch kind {
	case "file":
		err = a.api.SetFilePrivacy(ctx, id, isPrivate)
	case "image":
		err = a.api.SetImagePrivacy(ctx, id, isPrivate)
	default:
		fmt.Println("Usage: privacy <file|image> <id> <on|off>")
		return
	}

	if err != nil {
		log.Printf("Privacy update unsuccessful: %s", err.Error())
		return
	}
	fmt.Printf("Privacy for %s %s set to %s\n", kind, id, setting)
}

func (a *App) DeleteImage(ctx context.Context, id string) {
	if err := a.api.DeleteImage(ctx, id); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return
	}
	fmt.Printf("Deleted image %s\n", id)
}
