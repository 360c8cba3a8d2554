package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
)

// FaceCmd runs the stateless face pipeline: selfie liveness + profile
// extraction, document extraction, and a profile match.
func FaceCmd(env *Env, services *Services) {
	ctx := context.Background()
	client := services.Face

	selfieMedia := errtb.Must(os.ReadFile(env.SelfiePath))
	documentImage := errtb.Must(os.ReadFile(env.DocumentFrontPath))

	color.Cyan("selfie")
	selfie := errtb.Must(client.Selfie(ctx, selfieMedia, true, true))
	if selfie.LivenessScore != nil {
		color.Green("liveness score: %f", *selfie.LivenessScore)
	}
	color.Green("faces found: %d", selfie.NumberOfFaces)

	color.Cyan("document")
	document := errtb.Must(client.Document(ctx, documentImage))

	color.Cyan("match_profiles")
	match := errtb.Must(client.MatchProfiles(ctx, selfie.FaceProfile, document.FaceProfile))
	color.Green("match score: %f", match.Score)
}
