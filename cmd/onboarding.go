package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fatih/color"
	"github.com/natefinch/atomic"

	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
	"github.com/alicebiometrics/onboarding-go/pkg/onboarding"
)

// OnboardingCmd runs a full onboarding: user creation, selfie and document
// upload, report and certificate generation.
func OnboardingCmd(env *Env, services *Services) {
	ctx := context.Background()
	client := services.Onboarding

	color.Cyan("create_user")
	userID := errtb.Must(client.CreateUser(ctx, &onboarding.UserInfo{
		FirstName: "Carmen",
		LastName:  "Espanola",
		Email:     "carmen@example.com",
	}, &onboarding.DeviceInfo{DevicePlatform: "go-sdk"}))
	color.Green("user_id: %s", userID)

	color.Cyan("add_selfie")
	selfie := errtb.Must(os.ReadFile(env.SelfiePath))
	errtb.Must0(client.AddSelfie(ctx, userID, selfie))

	color.Cyan("create_document")
	documentID := errtb.Must(client.CreateDocument(ctx, userID, onboarding.DocumentTypeIDCard, "ESP"))
	color.Green("document_id: %s", documentID)

	color.Cyan("add_document (front and back)")
	front := errtb.Must(os.ReadFile(env.DocumentFrontPath))
	errtb.Must(client.AddDocument(ctx, userID, documentID, front, onboarding.DocumentSideFront, onboarding.AddDocumentOptions{}))
	back := errtb.Must(os.ReadFile(env.DocumentBackPath))
	errtb.Must(client.AddDocument(ctx, userID, documentID, back, onboarding.DocumentSideBack, onboarding.AddDocumentOptions{}))

	color.Cyan("waiting for onboarding completion")
	waitForCompletion(ctx, env, services, userID)

	color.Cyan("create_report")
	report := errtb.Must(client.CreateReport(ctx, userID))
	color.Green("report version: %v", report["version"])

	color.Cyan("create_certificate")
	certificateID := errtb.Must(client.CreateCertificate(ctx, userID, "default"))
	certificate := errtb.Must(client.RetrieveCertificate(ctx, userID, certificateID))

	certificatePath := filepath.Join(env.OutputDir, fmt.Sprintf("certificate_%s.pdf", certificateID))
	errtb.Must0(atomic.WriteFile(certificatePath, bytes.NewReader(certificate)))
	color.Green("certificate saved to %s", certificatePath)

	color.Cyan("delete_user")
	errtb.Must0(client.DeleteUser(ctx, userID))
}

// waitForCompletion polls the user status until the platform has processed
// every uploaded media.
func waitForCompletion(ctx context.Context, env *Env, services *Services, userID string) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 2 * time.Second
	policy.MaxElapsedTime = 2 * time.Minute

	err := backoff.Retry(func() error {
		status, err := services.Onboarding.GetUserStatus(ctx, userID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if completed, ok := status["completed"].(bool); ok && completed {
			return nil
		}
		return fmt.Errorf("onboarding of user %s still in progress", userID)
	}, backoff.WithContext(policy, ctx))
	errtb.Must0(err)
}
