package services

// Services defined in this package:
// - AuthService: identity signup and login
// - StudentService: the student directory (create, list, stats, bulk import, export)
// - FeeService: per-student fees and the per-caste fee set
// - AttendanceService: attendance marks and subject reports
// - ExamService: exam schedule and results
// - AssignmentService: assignments and their submissions
