package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"lecture-pipeline/internal/lecture"
	repo "lecture-pipeline/internal/lecture/repository"
	"lecture-pipeline/internal/model"
	"lecture-pipeline/pkg/transcribe"
)

// audioScheme prefixes the pseudo-URL stored for inline audio. Anything not
// starting with http(s) is treated as a virtual identifier, not a location.
const audioScheme = "audio://"

// uuidLen is the length of the uuid prefix in a generated audio key.
const uuidLen = 36

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// buildAudioKey generates a virtual identifier for inline audio:
// "<uuid>-<title slug>". The slug suffix lets legacy rows without an
// indexed key still be matched by title fragment.
func buildAudioKey(title string) string {
	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return uuid.NewString()
	}
	return uuid.NewString() + "-" + slug
}

// titleFragment recovers the slug suffix from a generated key, as a
// space-separated lowercase phrase. Empty when the key carries no suffix.
func titleFragment(key string) string {
	if len(key) <= uuidLen+1 {
		return ""
	}
	return strings.ReplaceAll(key[uuidLen+1:], "-", " ")
}

func isExternalURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// resolveAudioInput turns a lecture's stored audio reference into a
// transcriber input. Precedence: external URL, then inline content, then
// virtual-identifier lookup against other lectures' inline audio.
func (uc *implUseCase) resolveAudioInput(ctx context.Context, lec model.Lecture) (transcribe.Input, error) {
	if lec.AudioURL != nil && isExternalURL(*lec.AudioURL) {
		return transcribe.Input{URL: *lec.AudioURL}, nil
	}

	if lec.HasInlineAudio() {
		return inlineInput(lec), nil
	}

	key := lec.AudioKey
	if key == "" && lec.AudioURL != nil {
		key = strings.TrimPrefix(*lec.AudioURL, audioScheme)
	}
	if key == "" {
		return transcribe.Input{}, lecture.ErrAudioNotFound
	}

	owner, err := uc.lookupAudioOwner(ctx, key)
	if err != nil {
		return transcribe.Input{}, err
	}
	return inlineInput(owner), nil
}

// lookupAudioOwner finds the lecture holding the inline audio a virtual
// identifier refers to. Three passes: the LRU cache, the indexed audio_key
// column, then a compatibility scan over rows written before the key column
// existed (substring match on key or pseudo-URL, falling back to a title
// fragment match).
func (uc *implUseCase) lookupAudioOwner(ctx context.Context, key string) (model.Lecture, error) {
	if id, ok := uc.audioKeys.Get(key); ok {
		owner, err := uc.repo.GetOneLecture(ctx, repo.GetOneLectureOptions{ID: id})
		if err == nil && owner.HasInlineAudio() {
			return owner, nil
		}
		uc.audioKeys.Remove(key)
	}

	owner, err := uc.repo.GetOneLecture(ctx, repo.GetOneLectureOptions{AudioKey: key})
	if err != nil {
		uc.l.Errorf(ctx, "uc.lookupAudioOwner GetOneLecture: %v", err)
		return model.Lecture{}, err
	}
	if owner.ID != "" && owner.HasInlineAudio() {
		uc.audioKeys.Add(key, owner.ID)
		return owner, nil
	}

	candidates, err := uc.repo.ListLectures(ctx, repo.ListLecturesOptions{HasInlineAudio: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.lookupAudioOwner ListLectures: %v", err)
		return model.Lecture{}, err
	}

	for _, cand := range candidates {
		if strings.Contains(cand.AudioKey, key) ||
			(cand.AudioURL != nil && strings.Contains(*cand.AudioURL, key)) {
			uc.audioKeys.Add(key, cand.ID)
			return cand, nil
		}
	}

	if frag := titleFragment(key); frag != "" {
		for _, cand := range candidates {
			if strings.Contains(strings.ToLower(cand.Title), frag) {
				uc.audioKeys.Add(key, cand.ID)
				return cand, nil
			}
		}
	}

	return model.Lecture{}, lecture.ErrAudioNotFound
}

func inlineInput(lec model.Lecture) transcribe.Input {
	return transcribe.Input{
		Data:     lec.AudioContent,
		Mime:     lec.AudioMime,
		Filename: lec.ID,
	}
}
