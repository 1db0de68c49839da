package domain

import "testing"

func TestCanAccessProject(t *testing.T) {
	cases := []struct {
		name     string
		actor    Actor
		clientID string
		want     bool
	}{
		{"admin on any project", Actor{ID: "a1", Role: RoleAdmin}, "c1", true},
		{"client on own project", Actor{ID: "c1", Role: RoleClient}, "c1", true},
		{"client on foreign project", Actor{ID: "c2", Role: RoleClient}, "c1", false},
		{"unknown role", Actor{ID: "x", Role: "guest"}, "c1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanAccessProject(tc.actor, tc.clientID); got != tc.want {
				t.Errorf("CanAccessProject(%+v, %q) = %v, want %v", tc.actor, tc.clientID, got, tc.want)
			}
		})
	}
}

func TestFeedbackStatusToggled(t *testing.T) {
	if got := FeedbackOpen.Toggled(); got != FeedbackResolved {
		t.Errorf("open must toggle to resolved, got %q", got)
	}
	if got := FeedbackResolved.Toggled(); got != FeedbackOpen {
		t.Errorf("resolved must toggle to open, got %q", got)
	}
	if got := FeedbackRejected.Toggled(); got != FeedbackRejected {
		t.Errorf("rejected must stay rejected, got %q", got)
	}
}

func TestAllowedMIMEType(t *testing.T) {
	allowed := []string{
		"image/png",
		"application/pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/postscript",
		"image/vnd.adobe.photoshop",
	}
	for _, m := range allowed {
		if !AllowedMIMEType(m) {
			t.Errorf("%s must be allowed", m)
		}
	}
	denied := []string{"application/x-msdownload", "text/html", "video/mp4", ""}
	for _, m := range denied {
		if AllowedMIMEType(m) {
			t.Errorf("%s must be denied", m)
		}
	}
}

func TestValidProjectStatus(t *testing.T) {
	for _, s := range []ProjectStatus{StatusAwaitingFeedback, StatusFeedbackReceived, StatusInProgress, StatusCompleted} {
		if !ValidProjectStatus(s) {
			t.Errorf("%q must be valid", s)
		}
	}
	if ValidProjectStatus("archived") {
		t.Error("unknown status must be invalid")
	}
}
