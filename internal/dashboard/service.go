package dashboard

import (
	"context"

	"SchoolServer/internal/class"
	"SchoolServer/internal/message"
	"SchoolServer/internal/notice"
	"SchoolServer/internal/student"
	"SchoolServer/internal/teacher"
)

// Stats is the admin dashboard summary: one count per resource.
type Stats struct {
	NoticesCount  int64 `json:"noticesCount"`
	MessagesCount int64 `json:"messagesCount"`
	ClassesCount  int64 `json:"classesCount"`
	StudentsCount int64 `json:"studentsCount"`
	TeachersCount int64 `json:"teachersCount"`
}

type DashboardService struct {
	notices  *notice.NoticeRepository
	messages *message.MessageRepository
	classes  *class.ClassRepository
	students *student.StudentRepository
	teachers *teacher.TeacherRepository
}

func NewDashboardService(
	notices *notice.NoticeRepository,
	messages *message.MessageRepository,
	classes *class.ClassRepository,
	students *student.StudentRepository,
	teachers *teacher.TeacherRepository,
) *DashboardService {
	return &DashboardService{
		notices:  notices,
		messages: messages,
		classes:  classes,
		students: students,
		teachers: teachers,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	noticesCount, err := s.notices.Count(ctx)
	if err != nil {
		return nil, err
	}
	messagesCount, err := s.messages.Count(ctx)
	if err != nil {
		return nil, err
	}
	classesCount, err := s.classes.Count(ctx)
	if err != nil {
		return nil, err
	}
	studentsCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	teachersCount, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		NoticesCount:  noticesCount,
		MessagesCount: messagesCount,
		ClassesCount:  classesCount,
		StudentsCount: studentsCount,
		TeachersCount: teachersCount,
	}, nil
}
