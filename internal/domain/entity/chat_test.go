package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestConversationIDSymmetric(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	if ConversationID(a, b) != ConversationID(b, a) {
		t.Error("conversation ID must not depend on argument order")
	}
	want := a.String() + "_" + b.String()
	if got := ConversationID(b, a); got != want {
		t.Errorf("ConversationID = %s, want %s", got, want)
	}
}

func TestConversationPeer(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := &ChatConversation{ParticipantA: a, ParticipantB: b}

	if c.Peer(a) != b {
		t.Error("Peer(a) should return b")
	}
	if c.Peer(b) != a {
		t.Error("Peer(b) should return a")
	}
	if !c.HasParticipant(a) || !c.HasParticipant(b) {
		t.Error("both participants should be members")
	}
	if c.HasParticipant(uuid.New()) {
		t.Error("stranger should not be a member")
	}
}

func TestConversationParticipantsRoundtrip(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	id := ConversationID(a, b)

	gotA, gotB, err := ConversationParticipants(id)
	if err != nil {
		t.Fatalf("ConversationParticipants returned error: %v", err)
	}
	if gotA == gotB {
		t.Fatal("participants collapsed to one ID")
	}
	for _, want := range []uuid.UUID{a, b} {
		if gotA != want && gotB != want {
			t.Errorf("participant %s missing from (%s, %s)", want, gotA, gotB)
		}
	}
}

func TestConversationParticipantsMalformed(t *testing.T) {
	cases := []string{"", "not-an-id", "abc_def", uuid.New().String()}
	for _, id := range cases {
		if _, _, err := ConversationParticipants(id); err == nil {
			t.Errorf("expected error for %q", id)
		}
	}
}
